package model

// Domisili is one of the four supported districts.
type Domisili string

const (
	DomisiliJakUt  Domisili = "JAK-UT"
	DomisiliJakBar Domisili = "JAK-BAR"
	DomisiliJakTim Domisili = "JAK-TIM"
	DomisiliJakSel Domisili = "JAK-SEL"
)

func Domisilis() []Domisili {
	return []Domisili{DomisiliJakUt, DomisiliJakBar, DomisiliJakTim, DomisiliJakSel}
}

func (d Domisili) IsValid() bool {
	switch d {
	case DomisiliJakUt, DomisiliJakBar, DomisiliJakTim, DomisiliJakSel:
		return true
	}
	return false
}

// JenisKelamin is the customer gender.
type JenisKelamin string

const (
	JenisKelaminPria   JenisKelamin = "PRIA"
	JenisKelaminWanita JenisKelamin = "WANITA"
)

// DefaultJenisKelamin is preselected on blank forms and used when a record has none.
const DefaultJenisKelamin = JenisKelaminPria

func JenisKelamins() []JenisKelamin {
	return []JenisKelamin{JenisKelaminPria, JenisKelaminWanita}
}

func (j JenisKelamin) Label() string {
	switch j {
	case JenisKelaminPria:
		return "Pria"
	case JenisKelaminWanita:
		return "Wanita"
	}
	return string(j)
}

func (j JenisKelamin) IsValid() bool {
	return j == JenisKelaminPria || j == JenisKelaminWanita
}

// Pelanggan is a customer.
type Pelanggan struct {
	ID           int64        `json:"id"`
	Nama         string       `json:"nama"`
	Domisili     Domisili     `json:"domisili"`
	JenisKelamin JenisKelamin `json:"jenis_kelamin"`
	CreatedAt    string       `json:"created_at,omitempty"`
}
