// Zhconv converts Chinese text between script variants from the command
// line, using the same dictionary engine as the library.
//
// Usage:
//
//	# Convert a file, Simplified to Traditional
//	zhconv convert -c s2t book.txt
//
//	# Convert standard input
//	echo 头发 | zhconv convert -c s2t
//
//	# List built-in configurations
//	zhconv configs
//
//	# Precompile dictionaries, recompiling as they change
//	zhconv compile --watch dicts/*.txt
package main

func main() {
	Execute()
}
