/*
Package utils contains decorators shared by every handler of the
application: panic recovery, savepoints, transaction logging and action
tagging.
*/
package utils
