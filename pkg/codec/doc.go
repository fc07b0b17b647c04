/*
Package codec translates the graph model to and from the wire JSON consumed by
the awpak engine.

Every union is externally tagged: a variant without fields is the bare tag
string ("True", "Null") and a variant with fields is a single-key object
({"Concat": [...]}). Encoding is total. Decoding dispatches on the reserved key
and fails with an UnrecognizedVariant error, except for DataComparator,
DataToAgentHistory and FromAgentHistoryContent which fall back to True, Replace
and Full so older documents keep loading. WithStrict disables the fallbacks.
*/
package codec
