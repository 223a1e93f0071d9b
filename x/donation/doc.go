/*
Package donation implements a donation vault.

A vault pools contributions from any number of contributors. Every
contributor is ranked into a tier by the cumulative amount contributed. A
single admin can withdraw the collected funds, pause the vault and change
its limits.

Each vault is identified by a short string ID, so many independent vaults
can live on the same chain. All state changes are recorded in an append
only event log that can be read by off chain observers.
*/
package donation
