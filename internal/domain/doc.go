// Package domain contains the core domain model for recordemit.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML parsing,
// text encodings, or the filesystem. Infra/adapters map into/from these types.
package domain
