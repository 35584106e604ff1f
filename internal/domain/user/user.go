package user

type Role string

const (
	RoleWorker   Role = "worker"
	RoleEmployer Role = "employer"
)
