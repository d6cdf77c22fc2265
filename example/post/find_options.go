package post

type FindOptions struct {
	Ids       []string
	AuthorIds []string
}

type FindOneOptions struct {
	Id string
}

type CreateOptions struct {
	AuthorId string
	Title    string
	Content  string
}
