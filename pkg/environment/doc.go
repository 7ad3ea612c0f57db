// Package environment names the deployment environment and carries it
// through request contexts.
//
//	env, err := environment.Parse(os.Getenv("APP_ENV")) // "prod" -> Production
//	r.Use(environment.Middleware(env))
//
// Handlers read it back with FromContext, e.g. to decide how much error
// detail a response may carry.
package environment
