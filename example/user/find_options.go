package user

type FindOptions struct {
	Ids []string
}

type FindOneOptions struct {
	Id string
}

type CreateOptions struct {
	Name  string
	Email string
}
