package types

type contextKey string

// AppKey carries the composed *app.App through the cobra command
// context.
const AppKey contextKey = "app"
