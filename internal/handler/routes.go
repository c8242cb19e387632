package handler

// APIPath is the single endpoint of the table-dispatched API.
// Keep a single source of truth to avoid path drift across handlers and tests.
const APIPath = "/api"
