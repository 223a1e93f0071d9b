/*
Package x contains helpers shared by the vault extensions.

Extensions implement common functionality (Handler, Decorator,
etc.) and are combined together to construct the application.
Authentication is abstracted behind the Authenticator interface
so that an extension never depends on a concrete signature scheme.
*/
package x
