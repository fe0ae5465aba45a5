// Package fixture loads declarative YAML request descriptions and replays
// them as builder sequences.
//
// A fixture names a path and optionally a method, query, headers and a
// body of type raw, urlencoded or multipart:
//
//	name: create user
//	method: POST
//	path: /users
//	body:
//	  type: urlencoded
//	  form:
//	    user: [alice]
//
// String fields may contain {{var}} placeholders and {{fn(args)}} builtin
// calls (uuid, now, timestamp, randomString), resolved at load time.
// Fixtures are validated after resolution; every invalid field is reported
// with its yaml name.
package fixture
