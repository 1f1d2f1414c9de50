package packfile

import (
	"reflect"
)

// CopyStringFields copies translatable string fields from src into dst.
// "_id" is an identity, never a translation, and is left alone.
func CopyStringFields(dst, src map[string]any) {
	for k, v := range src {
		if k == "_id" {
			continue
		}
		if s, ok := v.(string); ok && keepKeys[k] {
			dst[k] = s
		}
	}
}

// MergeTranslations merges a translated document fragment into the
// original one. String fields come over via CopyStringFields; nested
// objects merge recursively; arrays merge element-wise. Arrays are also
// cross-merged across keys within the same node, which lets a rename of
// the containing key in the translated file still land.
func MergeTranslations(dst, src map[string]any) {
	CopyStringFields(dst, src)

	for k, v := range dst {
		sv, ok := src[k]
		if !ok {
			continue
		}
		switch dv := v.(type) {
		case map[string]any:
			if sm, ok := sv.(map[string]any); ok {
				MergeTranslations(dv, sm)
			}
		case []any:
			if sl, ok := sv.([]any); ok {
				MergeLists(dv, sl)
			}
		}
	}

	var dstLists, srcLists [][]any
	for _, v := range dst {
		if l, ok := v.([]any); ok {
			dstLists = append(dstLists, l)
		}
	}
	for _, v := range src {
		if l, ok := v.([]any); ok {
			srcLists = append(srcLists, l)
		}
	}
	for _, dl := range dstLists {
		for _, sl := range srcLists {
			if sameSlice(dl, sl) {
				continue
			}
			MergeLists(dl, sl)
		}
	}
}

// sameSlice reports whether two slices alias the same backing array.
func sameSlice(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return false
	}
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

// MergeLists merges arrays of objects by matching items by "_id" first,
// by "name" second, and by position last. It only updates existing
// items, never creates or removes them.
func MergeLists(dst, src []any) {
	var dstIdx, srcIdx []int
	for i, item := range dst {
		if _, ok := item.(map[string]any); ok {
			dstIdx = append(dstIdx, i)
		}
	}
	for i, item := range src {
		if _, ok := item.(map[string]any); ok {
			srcIdx = append(srcIdx, i)
		}
	}

	byID := make(map[string]int)
	byName := make(map[string]int)
	for _, i := range srcIdx {
		obj := src[i].(map[string]any)
		if id, ok := obj["_id"].(string); ok {
			byID[id] = i
		}
		if name, ok := obj["name"].(string); ok {
			byName[name] = i
		}
	}

	usedSrc := make(map[int]bool)

	for _, di := range dstIdx {
		d := dst[di].(map[string]any)
		id, ok := d["_id"].(string)
		if !ok {
			continue
		}
		if si, found := byID[id]; found && !usedSrc[si] {
			MergeTranslations(d, src[si].(map[string]any))
			usedSrc[si] = true
		}
	}

	for _, di := range dstIdx {
		d := dst[di].(map[string]any)
		name, ok := d["name"].(string)
		if !ok {
			continue
		}
		if si, found := byName[name]; found && !usedSrc[si] {
			MergeTranslations(d, src[si].(map[string]any))
			usedSrc[si] = true
		}
	}

	var remSrc []int
	for _, si := range srcIdx {
		if !usedSrc[si] {
			remSrc = append(remSrc, si)
		}
	}
	for i, di := range dstIdx {
		if i >= len(remSrc) {
			break
		}
		MergeTranslations(dst[di].(map[string]any), src[remSrc[i]].(map[string]any))
	}
}

// MergeDocuments merges a translated (usually reduced) document into
// the original. Entries are matched by their key first, then by the
// original entry name used as a key, then by the inner "name" field.
// It reports whether both documents carried an entries object.
func MergeDocuments(original, translated map[string]any) bool {
	CopyStringFields(original, translated)

	oEntries, ok := original["entries"].(map[string]any)
	if !ok {
		return false
	}
	tEntries, ok := translated["entries"].(map[string]any)
	if !ok {
		return false
	}

	tByKey := make(map[string]map[string]any)
	tByInnerName := make(map[string]map[string]any)
	for tk, tv := range tEntries {
		obj, ok := tv.(map[string]any)
		if !ok {
			continue
		}
		tByKey[tk] = obj
		if name, ok := obj["name"].(string); ok {
			tByInnerName[name] = obj
		}
	}

	for key, ov := range oEntries {
		oObj, ok := ov.(map[string]any)
		if !ok {
			continue
		}

		tObj := tByKey[key]
		if tObj == nil {
			if name, ok := oObj["name"].(string); ok {
				tObj = tByKey[name]
			}
		}
		if tObj == nil {
			if name, ok := oObj["name"].(string); ok {
				tObj = tByInnerName[name]
			}
		}

		if tObj != nil {
			MergeTranslations(oObj, tObj)
		}
	}

	return true
}
