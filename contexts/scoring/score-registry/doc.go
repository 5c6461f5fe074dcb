// Package scoreregistry implements the owner-gated score registry inside the
// scoring context.
//
// The module owns the instantiate/execute/query lifecycle: instantiation
// records the invoking identity as owner, execute applies owner-authorized
// score writes, and queries read owner, score, and instance metadata. All
// persistence goes through a byte-addressed state port so the core stays
// host-agnostic; adapters provide in-memory and Postgres-backed stores.
package scoreregistry
