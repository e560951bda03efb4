// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the execution lifecycle of a build: seeding
// properties, loading build files and running their drush tasks in order,
// decoupled from any specific entrypoint like a CLI.
package app
