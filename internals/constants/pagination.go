package constants

// PageSize is the fixed number of questions per list page.
const PageSize = 20
