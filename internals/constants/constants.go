package constants

// Record lifecycle. Approved/rejected are terminal; nothing transitions
// back to pending.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const (
	GathaTypeNew      = "new"
	GathaTypeRevision = "revision"
)

const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleUser       = "user"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)
