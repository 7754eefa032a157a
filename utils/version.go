package utils

// REVISION is stamped into every API response envelope
const REVISION = "v1.4.2"
