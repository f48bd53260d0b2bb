package faq

import (
	"sort"
	"strings"
)

// SynonymTable maps a canonical concept key to the informal variants that imply it.
type SynonymTable map[string][]string

// DefaultSynonyms is the built-in table used when the knowledge base document
// does not provide its own.
func DefaultSynonyms() SynonymTable {
	return SynonymTable{
		"envio":      {"mandan", "llega", "llegar", "tarda", "despacho", "delivery", "entrega", "paquete"},
		"pago":       {"pagar", "tarjeta", "transferencia", "efectivo", "cuotas", "abonar", "mercadopago"},
		"devolucion": {"devolver", "cambio", "cambiar", "reembolso", "arrepenti", "no me gusto"},
		"precio":     {"cuanto sale", "cuanto cuesta", "cuanto vale", "costo", "valor", "barato", "caro"},
		"stock":      {"disponible", "tienen", "queda", "quedan", "agotado"},
		"talle":      {"talla", "medida", "tamano", "size"},
		"horario":    {"abren", "cierran", "atienden", "hora"},
		"contacto":   {"telefono", "whatsapp", "mail", "correo", "llamar", "hablar con"},
	}
}

// Keys returns the canonical keys in sorted order.
func (t SynonymTable) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// normalized returns a copy with keys and variants run through Normalize.
func (t SynonymTable) normalized() SynonymTable {
	out := make(SynonymTable, len(t))
	for key, variants := range t {
		nk := Normalize(key)
		if nk == "" {
			continue
		}
		for _, v := range variants {
			nv := Normalize(v)
			if nv == "" {
				continue
			}
			out[nk] = append(out[nk], nv)
		}
	}
	return out
}

// Expand appends every canonical key whose variants occur in normalized text.
// The input is always kept as a prefix of the result.
func Expand(normalized string, table SynonymTable) string {
	var sb strings.Builder
	sb.WriteString(normalized)
	for _, key := range table.Keys() {
		for _, variant := range table[key] {
			if variant != "" && strings.Contains(normalized, variant) {
				sb.WriteString(" ")
				sb.WriteString(key)
				break
			}
		}
	}
	return sb.String()
}
