/*
Package errors implements custom error interfaces for the pawn module.

The idea is to reuse as many errors from this package as possible and define
custom package errors when absolutely necessary. Errors are registered with a
unique code that is returned over the ABCI interface, so a client can react to
an error category without parsing the message.

Use Wrap and Wrapf to add context to an error while preserving the original
error category and attaching a stack trace.
*/
package errors
