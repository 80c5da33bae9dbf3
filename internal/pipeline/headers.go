package pipeline

// Header is a single name/value pair. Names are stored and compared exactly
// as given, no canonicalization.
type Header struct {
	Name  string
	Value string
}

// Headers is an insertion-ordered string→string mapping. Set overwrites an
// existing entry in place so header order survives middleware mutation.
type Headers []Header

func (h Headers) Get(name string) (string, bool) {
	for _, header := range h {
		if header.Name == name {
			return header.Value, true
		}
	}
	return "", false
}

func (h *Headers) Set(name, value string) {
	for i, header := range *h {
		if header.Name == name {
			(*h)[i].Value = value
			return
		}
	}
	*h = append(*h, Header{Name: name, Value: value})
}

func (h *Headers) Del(name string) {
	for i, header := range *h {
		if header.Name == name {
			*h = append((*h)[:i], (*h)[i+1:]...)
			return
		}
	}
}
