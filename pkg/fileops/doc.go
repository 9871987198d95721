// Package fileops provides the security primitives for serving a filesystem
// tree to untrusted clients.
//
// Clients address files with virtual paths rooted at "/": the path "/a/b.txt"
// names the file a/b.txt under the configured data root, and a relative path
// "a/b.txt" names the same file. Path confinement is enforced in two layers:
//
//  1. Lexical: Localize normalizes every wire path against the virtual root
//     before any filesystem access, so ".." segments can never climb above
//     the data root, and absolute client paths are remapped inside it.
//  2. Filesystem: all I/O goes through an os.Root opened on the data root,
//     which the kernel-level openat2/O_RESOLVE_BENEATH machinery keeps
//     confined even against symlinks created after validation.
//
// The second layer is what defends against symlink escapes and
// time-of-check/time-of-use races; the first keeps error messages sane and
// rejects obviously malformed input (NUL bytes, backslash separators,
// empty paths) before it reaches the kernel.
//
// # Example
//
//	root, dir, err := fileops.OpenDataRoot("/data")
//	if err != nil {
//	    return err
//	}
//	defer root.Close()
//
//	rel, err := fileops.Localize("/reports/../reports/q3.txt")
//	if err != nil {
//	    return err
//	}
//	f, err := root.Open(rel) // opens /data/reports/q3.txt, never outside /data
package fileops
