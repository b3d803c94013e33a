// Package carbon is the emissions computation and advisory-tip engine.
//
// Every operation is a single synchronous pass over a user's current activity
// log: nothing is cached between calls, and results are recomputed from the
// stores on each invocation. Activity types without a factor or rule are
// accepted silently so that new activity types can be logged before factors
// exist for them.
package carbon
