/*
Package errors defines the error kinds of the application and the helpers
to wrap them.

Every error returned from a handler should wrap a registered kind, either
with Wrap or with the kind's New method. The kind decides the ABCI code
reported to clients, see ABCIInfo. Extensions declare their own kinds with
Register using codes that are not taken yet.

Validation code collects problems per field with AppendField so that a
client receives all of them at once.
*/
package errors
