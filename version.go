package orderbot

// Version is the orderbot release, printed by `orderbot version` and the banner.
const Version = "0.3.0"
