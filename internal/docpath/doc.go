// Package docpath implements dotted-key parsing and the read/write path
// resolution algorithm over the value model.
//
// A path addresses a nested location within one record: the first segment
// names the top-level record, the remaining segments walk nested object
// fields. Resolution never traverses into arrays by numeric segment;
// arrays are only replaced wholesale by the operation layer.
package docpath
