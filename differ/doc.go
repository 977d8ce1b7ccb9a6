/*
Package differ compares the component schemas of two OpenAPI documents.

It is used to check a generated document against a reference (golden) document:
the source is the reference and the target is the generated document. Schemas and
properties present only in the source are reported as removed, those only in the
target as added, and properties whose schema differs as modified.

# Usage

	result, err := differ.New().DiffFiles("golden.json", "generated.yaml")
	if err != nil {
		log.Fatal(err)
	}
	for _, change := range result.Changes {
		fmt.Println(change)
	}

Schemas are compared by value after normalizing both sides to their JSON form, so a
document decoded from YAML compares equal to one built in memory.
*/
package differ
