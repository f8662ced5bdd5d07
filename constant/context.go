package constant

type ContextKey string

// UserIDKey carries the authenticated user's UUID through request contexts.
const UserIDKey ContextKey = "user_id"
