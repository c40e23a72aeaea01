/*
Package deck implements the flashcard domain store.

# Ownership

Store is an explicitly owned object: it is constructed once at startup from a
Persister, handed by reference to the UI or CLI, and dropped at exit. There is
no package-level state.

# Mutations

Every mutation validates minimally, changes the in-memory state, saves the
whole state through the Persister and then calls the change hook
synchronously, in the same call stack. Operations that reference an unknown
deck or card id are silent no-ops: nothing is saved and the hook is not called.

Navigation (Next, Previous) and search-query edits only notify; they are
persisted with the next saving mutation.

# Concurrency

Store is not safe for concurrent use. It is owned by a single event loop.
*/
package deck
