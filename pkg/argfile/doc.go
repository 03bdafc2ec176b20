/*
Package argfile encodes and decodes JVM argument files.

An argument file lists one argument per line. Every argument written by this package is
wrapped in double quotes, with backslashes, quotes and control characters escaped, so paths
containing spaces or Windows separators survive the round trip through the launcher.

Blank lines and lines starting with '#' are ignored when reading.
*/
package argfile
