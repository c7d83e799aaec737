package mindmirror

// Version is the current release of mindmirror.
const Version = "0.1.0"
