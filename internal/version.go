package internal

// Version is the yomi release version
const Version = "0.2.0"
