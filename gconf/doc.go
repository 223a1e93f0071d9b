/*
Package gconf keeps one configuration entity per extension in the
application store.

The genesis section conf.<package> is saved with InitConfig. Afterwards
only the owner named in the configuration can change it, by sending a
PatchMsg to the UpdateConfigurationHandler.

A missing configuration is ErrNotFound. Extensions treat that as a broken
chain setup, there is nothing a client can do about it.
*/
package gconf
