// Package state persists conversation state for Telegram bots. A Storage maps
// a conversation key (chat + user) to a short state label and a JSON scratch
// document. PostgresStorage is the production implementation; MemoryStorage
// backs tests and development.
package state
