package iocache

import (
	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/pulseboard/pulseboard/schema"
	"github.com/stretchr/testify/mock"
)

// MockCacheManager is a mock implementation of CacheManager for testing.
type MockCacheManager struct {
	mock.Mock
}

var _ contract.CacheManager = &MockCacheManager{} // Compile-time check

// GetRecordStore implements the CacheManager interface.
func (m *MockCacheManager) GetRecordStore() contract.CacheStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.CacheStore)
	return store
}

// GetSnapshotStore implements the CacheManager interface.
func (m *MockCacheManager) GetSnapshotStore() contract.SnapshotStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.SnapshotStore)
	return store
}

// MockCacheStore is a mock implementation of CacheStore for testing.
type MockCacheStore struct {
	mock.Mock
}

var _ contract.CacheStore = &MockCacheStore{} // Compile-time check

// Get implements the CacheStore interface.
func (m *MockCacheStore) Get(key string) ([]byte, int, int64, error) {
	args := m.Called(key)
	data, _ := args.Get(0).([]byte)
	return data, args.Int(1), args.Get(2).(int64), args.Error(3)
}

// Set implements the CacheStore interface.
func (m *MockCacheStore) Set(key string, data []byte, version int, ts int64) error {
	args := m.Called(key, data, version, ts)
	return args.Error(0)
}

// Close implements the CacheStore interface.
func (m *MockCacheStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// GetStatus implements the CacheStore interface.
func (m *MockCacheStore) GetStatus() (schema.CacheStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.CacheStatus), args.Error(1)
}

// MockSnapshotStore is a mock implementation of SnapshotStore for testing.
type MockSnapshotStore struct {
	mock.Mock
}

var _ contract.SnapshotStore = &MockSnapshotStore{} // Compile-time check

// BeginScopeLoad implements the SnapshotStore interface.
func (m *MockSnapshotStore) BeginScopeLoad(scope schema.ScopeSelection, window schema.DateRange) (int64, error) {
	args := m.Called(scope, window)
	return args.Get(0).(int64), args.Error(1)
}

// EndScopeLoad implements the SnapshotStore interface.
func (m *MockSnapshotStore) EndScopeLoad(loadID int64) error {
	args := m.Called(loadID)
	return args.Error(0)
}

// RecordCategoryResult implements the SnapshotStore interface.
func (m *MockSnapshotStore) RecordCategoryResult(loadID int64, category schema.MetricCategory, value float64, loadErr error) error {
	args := m.Called(loadID, category, value, loadErr)
	return args.Error(0)
}

// GetAllScopeLoads implements the SnapshotStore interface.
func (m *MockSnapshotStore) GetAllScopeLoads() ([]schema.ScopeLoadRecord, error) {
	args := m.Called()
	records, _ := args.Get(0).([]schema.ScopeLoadRecord)
	return records, args.Error(1)
}

// GetAllCategoryResults implements the SnapshotStore interface.
func (m *MockSnapshotStore) GetAllCategoryResults() ([]schema.CategoryResultRecord, error) {
	args := m.Called()
	records, _ := args.Get(0).([]schema.CategoryResultRecord)
	return records, args.Error(1)
}

// GetStatus implements the SnapshotStore interface.
func (m *MockSnapshotStore) GetStatus() (schema.SnapshotStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.SnapshotStatus), args.Error(1)
}

// Close implements the SnapshotStore interface.
func (m *MockSnapshotStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
