package schema

// ScopeKind discriminates the scope selection union.
type ScopeKind string

// All scope kinds supported.
const (
	UninitializedScope ScopeKind = "uninitialized"
	TeamScope          ScopeKind = "team"
	CollaboratorScope  ScopeKind = "collaborator"
)

// ScopeSelection says whether metrics are computed for a whole team or for
// one collaborator within it. CollaboratorID is set only for
// CollaboratorScope. Changing the team always clears the collaborator.
type ScopeSelection struct {
	Kind           ScopeKind `json:"kind"`
	TeamID         string    `json:"team_id,omitempty"`
	CollaboratorID string    `json:"collaborator_id,omitempty"`
}

// TeamScopeFor returns a team-wide selection.
func TeamScopeFor(teamID string) ScopeSelection {
	return ScopeSelection{Kind: TeamScope, TeamID: teamID}
}

// CollaboratorScopeFor returns a single-collaborator selection within a team.
func CollaboratorScopeFor(teamID, collaboratorID string) ScopeSelection {
	return ScopeSelection{Kind: CollaboratorScope, TeamID: teamID, CollaboratorID: collaboratorID}
}

// IsCollaborator reports whether the selection targets a single collaborator.
func (s ScopeSelection) IsCollaborator() bool {
	return s.Kind == CollaboratorScope
}
