package faq

// noSynonyms overrides the built-in table with one that never fires.
var noSynonyms = SynonymTable{"zzz": {"qqqq"}}

func storeDocument() *Document {
	return &Document{
		FAQs: []DocumentEntry{
			{
				Question: "¿Cuánto tarda el envío?",
				Answer:   "El envío tarda entre 3 y 5 días hábiles según tu zona.",
				Keywords: []string{"envio", "demora"},
				Category: "shipping",
			},
			{
				Question: "¿Hacen envíos al interior?",
				Answer:   "Sí, enviamos a todo el país por correo.",
				Keywords: []string{"interior"},
				Category: "shipping",
			},
			{
				Question: "¿Qué medios de pago aceptan?",
				Answer:   "Aceptamos tarjetas de crédito, débito y transferencia bancaria.",
				Keywords: []string{"pago", "tarjeta"},
				Category: "payments",
			},
			{
				Question: "¿Puedo devolver un producto si no me queda bien?",
				Answer:   "Tenés 30 días para devolver el producto sin uso.",
				Keywords: []string{"devolucion", "cambio"},
				Category: "returns",
			},
			{
				Question: "¿Tienen local a la calle?",
				Answer:   "Trabajamos únicamente online.",
			},
		},
		Greetings:   []string{"¡Hola! Soy el asistente de la tienda.", "¡Buenas! ¿En qué te ayudo?"},
		Fallback:    "No entendí tu consulta.",
		Suggestions: []string{"Envíos", "Medios de pago", "Devoluciones"},
		Categories: map[string][]string{
			"shipping": {"¿Cuánto tarda el envío?", "¿Hacen envíos al interior?"},
			"payments": {"¿Puedo pagar en cuotas?"},
		},
	}
}

func storeKB() *KnowledgeBase {
	return NewKnowledgeBase(storeDocument())
}

func singleEntryKB(entry DocumentEntry) *KnowledgeBase {
	return NewKnowledgeBase(&Document{
		FAQs:     []DocumentEntry{entry},
		Synonyms: noSynonyms,
	})
}
