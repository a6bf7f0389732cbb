// Package service contains the application's business logic: the listing
// workflow and the checkout notification fan-out. Services accept store and
// notifier interfaces and are wired together at startup.
package service
