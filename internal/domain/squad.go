package domain

// Squad named group of users sharing a batch
type Squad struct {
	ID    int64
	Name  string
	Batch Batch
}

// SquadWithMembers squad together with its users
type SquadWithMembers struct {
	Squad
	Members []User
}
