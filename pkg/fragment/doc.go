// Package fragment loads declarative field documents (YAML or JSON) and
// turns them into ui nodes. It backs the formfield CLI and preview server.
package fragment
