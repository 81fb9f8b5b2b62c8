// Package git is the subprocess collaborator for the optional commit and
// tag step of a version bump. It shells out to the git binary through a
// small Runner interface so tests never need a real repository.
package git
