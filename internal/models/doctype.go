package models

import "strings"

type DocumentType string

const (
	DocTypeDiplomaBac       DocumentType = "DIPLOMA_BAC"
	DocTypeDiplomaHigher    DocumentType = "DIPLOMA_HIGHER"
	DocTypeIDCardFront      DocumentType = "ID_CARD_FRONT"
	DocTypeIDCardBack       DocumentType = "ID_CARD_BACK"
	DocTypeBirthCertificate DocumentType = "BIRTH_CERTIFICATE"
	DocTypeIDPhoto          DocumentType = "ID_PHOTO"
)

// DocumentTypeSpec is one entry of the static document catalog: per-type
// upload constraints plus whether an applicant may hold more than one live
// document of the type.
type DocumentTypeSpec struct {
	Description         string
	AllowedContentTypes []string
	MaxSizeBytes        int64
	Repeatable          bool
}

var documentCatalog = map[DocumentType]DocumentTypeSpec{
	DocTypeDiplomaBac: {
		Description:         "Baccalaureate / High School Diploma",
		AllowedContentTypes: []string{"application/pdf"},
		MaxSizeBytes:        5 << 20,
		Repeatable:          true,
	},
	DocTypeDiplomaHigher: {
		Description:         "Higher Education Diploma",
		AllowedContentTypes: []string{"application/pdf"},
		MaxSizeBytes:        5 << 20,
		Repeatable:          true,
	},
	DocTypeIDCardFront: {
		Description:         "National ID Card (Front)",
		AllowedContentTypes: []string{"image/jpeg", "image/png"},
		MaxSizeBytes:        2 << 20,
	},
	DocTypeIDCardBack: {
		Description:         "National ID Card (Back)",
		AllowedContentTypes: []string{"image/jpeg", "image/png"},
		MaxSizeBytes:        2 << 20,
	},
	DocTypeBirthCertificate: {
		Description:         "Birth Certificate",
		AllowedContentTypes: []string{"application/pdf"},
		MaxSizeBytes:        3 << 20,
	},
	DocTypeIDPhoto: {
		Description:         "ID Photo",
		AllowedContentTypes: []string{"image/jpeg", "image/png"},
		MaxSizeBytes:        1 << 20,
	},
}

// DocumentTypeSpecFor resolves a type tag against the catalog.
func DocumentTypeSpecFor(t DocumentType) (DocumentTypeSpec, bool) {
	spec, ok := documentCatalog[t]
	return spec, ok
}

// NonRepeatableDocumentTypes lists the types covered by the partial unique
// index on documents(owner_id, document_type).
func NonRepeatableDocumentTypes() []DocumentType {
	types := make([]DocumentType, 0, len(documentCatalog))
	for t, spec := range documentCatalog {
		if !spec.Repeatable {
			types = append(types, t)
		}
	}
	return types
}

func (s DocumentTypeSpec) IsContentTypeAllowed(contentType string) bool {
	for _, allowed := range s.AllowedContentTypes {
		if strings.EqualFold(allowed, contentType) {
			return true
		}
	}
	return false
}
