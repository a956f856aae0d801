package models

// mergeField overwrites dst only when the patch carries a value
func mergeField[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
