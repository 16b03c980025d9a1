package metrics

// ModulusDrop tracks the fractional drop of the bulk modulus between the
// first and last observed point of a sweep.
type ModulusDrop struct {
	name    string
	first   float64
	last    float64
	samples int
}

func NewModulusDrop() *ModulusDrop {
	return &ModulusDrop{name: "modulus_drop"}
}

func (m *ModulusDrop) Name() string { return m.name }

func (m *ModulusDrop) Observe(x, k, g float64) {
	if m.samples == 0 {
		m.first = k
	}
	m.last = k
	m.samples++
}

func (m *ModulusDrop) Value() float64 {
	if m.samples == 0 || m.first == 0 {
		return 0
	}
	return (m.first - m.last) / m.first
}

func (m *ModulusDrop) Reset() {
	m.first = 0
	m.last = 0
	m.samples = 0
}
