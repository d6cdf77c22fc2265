package api

// Schema is the GraphQL schema served by the example.
// Post.author is the classic N+1 edge: it resolves through the per-request
// user loader instead of one query per post.
const Schema = `
schema {
	query: Query
	mutation: Mutation
}

type Query {
	user(id: ID!): User
	users: [User!]!
	post(id: ID!): Post
	posts(authorId: ID): [Post!]!
}

type Mutation {
	createUser(name: String!, email: String!): User!
	createPost(authorId: ID!, title: String!, content: String!): Post!
}

type User {
	id: ID!
	name: String!
	email: String!
	posts: [Post!]!
}

type Post {
	id: ID!
	title: String!
	content: String!
	author: User!
}
`
