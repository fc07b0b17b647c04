package domain

// DefaultSizerMax is the chunk size a new sizer starts with.
const DefaultSizerMax = 1024

// StoreConfig declares a vector store queried by FromStore expressions.
type StoreConfig struct {
	ID        string
	Provider  StoreProvider
	Model     StoreModel
	Documents []StoreDocument
}

// NewStoreConfig returns an in-memory store with an Ollama embedding model.
func NewStoreConfig(id string) StoreConfig {
	return StoreConfig{
		ID:        id,
		Provider:  StoreProviderInMemory,
		Model:     &StoreOllama{},
		Documents: []StoreDocument{},
	}
}

// StoreModelTag identifies a StoreModel variant.
type StoreModelTag string

const (
	StoreModelOpenAI StoreModelTag = "OpenAI"
	StoreModelGemini StoreModelTag = "Gemini"
	StoreModelOllama StoreModelTag = "Ollama"
)

var storeModelTags = []StoreModelTag{StoreModelOpenAI, StoreModelGemini, StoreModelOllama}

// StoreModelTags returns every StoreModel tag.
func StoreModelTags() []StoreModelTag { return cloneTags(storeModelTags) }

// ParseStoreModelTag resolves a wire tag into a StoreModelTag.
func ParseStoreModelTag(s string) (StoreModelTag, bool) { return parseTag(storeModelTags, s) }

// StoreModel is the embedding model of a vector store.
type StoreModel interface {
	Tag() StoreModelTag
	isStoreModel()
}

type StoreOpenAI struct {
	Model  string
	APIKey string
}

type StoreGemini struct {
	Model  string
	APIKey string
}

type StoreOllama struct {
	Model string
}

func (*StoreOpenAI) Tag() StoreModelTag { return StoreModelOpenAI }
func (*StoreGemini) Tag() StoreModelTag { return StoreModelGemini }
func (*StoreOllama) Tag() StoreModelTag { return StoreModelOllama }

func (*StoreOpenAI) isStoreModel() {}
func (*StoreGemini) isStoreModel() {}
func (*StoreOllama) isStoreModel() {}

// NewStoreModel returns the default instance of the variant tag.
func NewStoreModel(tag StoreModelTag) (StoreModel, bool) {
	switch tag {
	case StoreModelOpenAI:
		return &StoreOpenAI{}, true
	case StoreModelGemini:
		return &StoreGemini{}, true
	case StoreModelOllama:
		return &StoreOllama{}, true
	}
	return nil, false
}

// StoreDocumentTag identifies a StoreDocument variant.
type StoreDocumentTag string

const (
	StoreDocumentText StoreDocumentTag = "Text"
	StoreDocumentPdf  StoreDocumentTag = "Pdf"
)

var storeDocumentTags = []StoreDocumentTag{StoreDocumentText, StoreDocumentPdf}

// StoreDocumentTags returns every StoreDocument tag.
func StoreDocumentTags() []StoreDocumentTag { return cloneTags(storeDocumentTags) }

// ParseStoreDocumentTag resolves a wire tag into a StoreDocumentTag.
func ParseStoreDocumentTag(s string) (StoreDocumentTag, bool) { return parseTag(storeDocumentTags, s) }

// StoreDocument is a file loaded into a vector store.
type StoreDocument interface {
	Tag() StoreDocumentTag
	isStoreDocument()
}

type DocumentText struct {
	Path  string
	Sizer StoreDocumentSizer
}

type DocumentPdf struct {
	Path  string
	Sizer StoreDocumentSizer
}

func (*DocumentText) Tag() StoreDocumentTag { return StoreDocumentText }
func (*DocumentPdf) Tag() StoreDocumentTag  { return StoreDocumentPdf }

func (*DocumentText) isStoreDocument() {}
func (*DocumentPdf) isStoreDocument()  {}

// NewStoreDocument returns the default instance of the variant tag.
func NewStoreDocument(tag StoreDocumentTag) (StoreDocument, bool) {
	switch tag {
	case StoreDocumentText:
		return &DocumentText{Sizer: &SizerNone{}}, true
	case StoreDocumentPdf:
		return &DocumentPdf{Sizer: &SizerNone{}}, true
	}
	return nil, false
}

// StoreDocumentSizerTag identifies a StoreDocumentSizer variant.
type StoreDocumentSizerTag string

const (
	SizerTagChars    StoreDocumentSizerTag = "Chars"
	SizerTagMarkdown StoreDocumentSizerTag = "Markdown"
	SizerTagNone     StoreDocumentSizerTag = "None"
)

var sizerTags = []StoreDocumentSizerTag{SizerTagChars, SizerTagMarkdown, SizerTagNone}

// StoreDocumentSizerTags returns every StoreDocumentSizer tag.
func StoreDocumentSizerTags() []StoreDocumentSizerTag { return cloneTags(sizerTags) }

// ParseStoreDocumentSizerTag resolves a wire tag into a StoreDocumentSizerTag.
func ParseStoreDocumentSizerTag(s string) (StoreDocumentSizerTag, bool) {
	return parseTag(sizerTags, s)
}

// StoreDocumentSizer controls how a document is split into chunks.
type StoreDocumentSizer interface {
	Tag() StoreDocumentSizerTag
	isSizer()
}

// SizerChars splits by character count. Desired is optional; zero means unset.
type SizerChars struct {
	Desired int
	Max     int
}

// SizerMarkdown splits along markdown structure.
type SizerMarkdown struct {
	Desired int
	Max     int
}

type SizerNone struct{}

func (*SizerChars) Tag() StoreDocumentSizerTag    { return SizerTagChars }
func (*SizerMarkdown) Tag() StoreDocumentSizerTag { return SizerTagMarkdown }
func (*SizerNone) Tag() StoreDocumentSizerTag     { return SizerTagNone }

func (*SizerChars) isSizer()    {}
func (*SizerMarkdown) isSizer() {}
func (*SizerNone) isSizer()     {}

// NewStoreDocumentSizer returns the default instance of the variant tag.
func NewStoreDocumentSizer(tag StoreDocumentSizerTag) (StoreDocumentSizer, bool) {
	switch tag {
	case SizerTagChars:
		return &SizerChars{Max: DefaultSizerMax}, true
	case SizerTagMarkdown:
		return &SizerMarkdown{Max: DefaultSizerMax}, true
	case SizerTagNone:
		return &SizerNone{}, true
	}
	return nil, false
}
