package models

// Credentials is the pre-validated caller identity injected by the
// surrounding platform (gateway). Authorization decisions, including the
// manager-role check on assignment endpoints, happen upstream; this service
// only carries the identity for logging and notification attribution.
type Credentials struct {
	ActorId string
	Role    string
}
