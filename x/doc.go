/*
Package x contains some standard extensions

Extensions implement common functionality (auth, validation helpers)
and domain-specific logic lives in sub-packages.
*/
package x
