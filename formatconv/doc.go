// Package formatconv converts between data formats and generates type
// declarations from sample JSON.
//
// JSON, YAML and CSV conversions keep object keys in source order. XML
// follows the xmltodict conventions: attributes become "@name" keys and
// element text next to attributes or children becomes "#text".
//
// Code generators accept a sample JSON document and emit TypeScript
// interfaces, Python dataclasses, pydantic models or Go structs. Nesting
// deeper than MaxDepth is rejected.
package formatconv
