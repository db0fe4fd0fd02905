package core

// Entity is a stable identifier into the world arena; 0 is never allocated
type Entity uint64

// NoEntity is the zero identifier, used for "no parent" and failed lookups
const NoEntity Entity = 0
