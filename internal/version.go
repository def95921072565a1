package internal

// Version is the dicttools release shown by --version.
const Version = "0.3.1"
