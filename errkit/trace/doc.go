// Package trace captures stack traces under an environment-variable gate
// read once per process, and exposes the pluggable generators (backtrace,
// timestamp, thread id, location) that produce the "implicit data" attached
// to errors at construction time.
package trace
