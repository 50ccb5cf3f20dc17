// Package config loads runtime configuration for the authclient front ends.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. YAML and JSON are both
//     accepted (JSON is read by the YAML parser).
//  3. Environment variables prefixed AUTHCLIENT__; a double underscore descends
//     one level, e.g. AUTHCLIENT__LOG__LEVEL=debug sets log.level.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the authentication service
//	-t int      request timeout (seconds)
//	-v string   path of the local vault database
//	-l string   log level (debug, info, warn, error)
//
// # File schema
//
//	server_url: http://localhost:3105
//	login_path: /login
//	register_path: /user
//	request_timeout: 15s
//	vault_path: authclient.db
//	key_file: authclient.key
//	log:
//	  level: info
//	  format: text
//	  file: ""
//
// The merged result is checked with struct validation before it is returned.
package config
