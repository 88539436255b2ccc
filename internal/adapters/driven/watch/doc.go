// Package watch provides a filesystem watcher for the corpus database,
// backed by fsnotify.
package watch
