package sllist

// Version is the release reported by the sllist command.
const Version = "0.1.0"
