package templates

// Entry is a canned reply for one (language, category) pair.
type Entry struct {
	Subject string
	Body    string
}

// Catalog maps language code -> category -> canned reply. It is built once at
// startup and never mutated afterwards.
type Catalog struct {
	entries map[string]map[string]Entry
}

// DefaultLanguage is the language substituted when a requested language has no
// catalog entries.
const DefaultLanguage = "pt"

// DefaultCategory is the category substituted when a requested category has no
// entry for the resolved language.
const DefaultCategory = "technical_support"

// NewCatalog builds the built-in catalog.
func NewCatalog() *Catalog {
	return &Catalog{entries: builtin}
}

// Get returns the entry for the given language and category.
func (c *Catalog) Get(language, category string) (Entry, bool) {
	byCategory, ok := c.entries[language]
	if !ok {
		return Entry{}, false
	}
	entry, ok := byCategory[category]
	return entry, ok
}

// HasLanguage reports whether the catalog carries entries for the language.
func (c *Catalog) HasLanguage(language string) bool {
	_, ok := c.entries[language]
	return ok
}

// HasEntry reports whether the catalog carries an entry for the pair.
func (c *Catalog) HasEntry(language, category string) bool {
	_, ok := c.Get(language, category)
	return ok
}

var builtin = map[string]map[string]Entry{
	"pt": {
		"payment_issue": {
			Subject: "Re: Problema com Pagamento - Equipe Financeira",
			Body: "Prezado(a) cliente,\n\n" +
				"Recebemos sua solicitação referente ao problema com pagamento. " +
				"Nossa equipe financeira já está analisando seu caso e trabalhando para resolver a situação o mais rápido possível. " +
				"Entendemos a importância dessa questão e daremos prioridade ao seu atendimento.\n\n" +
				"Um especialista da área financeira entrará em contato em até 24 horas com uma solução " +
				"ou com os próximos passos necessários para regularizar a situação.\n\n" +
				"Agradecemos pela compreensão e paciência.\n\n" +
				"Atenciosamente,\n" +
				"Equipe de Suporte Financeiro",
		},
		"technical_support": {
			Subject: "Re: Suporte Técnico - Análise em Andamento",
			Body: "Prezado(a) cliente,\n\n" +
				"Obrigado por reportar o problema técnico. Nossa equipe de engenharia já iniciou " +
				"a investigação detalhada do caso que você descreveu. Compreendemos como isso pode impactar " +
				"sua experiência com nosso produto.\n\n" +
				"Estamos trabalhando para identificar a causa raiz e implementar uma solução. " +
				"Você receberá atualizações sobre o progresso e, assim que resolvermos, " +
				"entraremos em contato imediatamente.\n\n" +
				"Enquanto isso, se tiver informações adicionais que possam nos ajudar, " +
				"fique à vontade para responder este email.\n\n" +
				"Atenciosamente,\n" +
				"Equipe de Suporte Técnico",
		},
		"information_request": {
			Subject: "Re: Sua Solicitação de Informações",
			Body: "Olá,\n\n" +
				"Obrigado pelo seu interesse! Recebemos sua solicitação de informações " +
				"e teremos prazer em ajudá-lo com os detalhes que precisa.\n\n" +
				"Nossa equipe de atendimento está preparando uma resposta completa e detalhada " +
				"para sua pergunta. Você receberá todas as informações solicitadas em breve, " +
				"junto com materiais adicionais que podem ser úteis.\n\n" +
				"Se tiver outras dúvidas enquanto isso, não hesite em nos contatar.\n\n" +
				"Atenciosamente,\n" +
				"Equipe de Atendimento ao Cliente",
		},
		"greeting": {
			Subject: "Re: Sua Mensagem",
			Body: "Olá,\n\n" +
				"Agradecemos muito pelo seu contato e pelas palavras gentis! " +
				"É sempre um prazer ouvir de nossos clientes.\n\n" +
				"Desejamos tudo de melhor para você também!\n\n" +
				"Atenciosamente,\n" +
				"Equipe de Suporte",
		},
		"complaint": {
			Subject: "Re: Seu Feedback - Prioridade Alta",
			Body: "Prezado(a) cliente,\n\n" +
				"Lamentamos profundamente pela experiência negativa que você teve. " +
				"Seu feedback é extremamente importante para nós e levamos todas as reclamações muito a sério.\n\n" +
				"Sua situação foi encaminhada para nossa gerência com prioridade alta. " +
				"Estamos comprometidos em resolver este problema e garantir que sua experiência melhore significativamente. " +
				"Um supervisor entrará em contato pessoalmente em até 12 horas para discutir uma solução adequada.\n\n" +
				"Agradecemos pela oportunidade de corrigir a situação.\n\n" +
				"Atenciosamente,\n" +
				"Gerência de Atendimento ao Cliente",
		},
		"spam": {
			Subject: "Re: Mensagem Recebida",
			Body: "Olá,\n\n" +
				"Agradecemos pelo contato.\n\n" +
				"Atenciosamente,\n" +
				"Equipe de Suporte",
		},
	},
	"en": {
		"payment_issue": {
			Subject: "Re: Payment Issue - Financial Team",
			Body: "Dear customer,\n\n" +
				"We have received your request regarding the payment issue. " +
				"Our financial team is already analyzing your case and working to resolve the situation as quickly as possible. " +
				"We understand the importance of this matter and will prioritize your service.\n\n" +
				"A specialist from the financial department will contact you within 24 hours with a solution " +
				"or with the next steps needed to regularize the situation.\n\n" +
				"Thank you for your understanding and patience.\n\n" +
				"Best regards,\n" +
				"Financial Support Team",
		},
		"technical_support": {
			Subject: "Re: Technical Support - Analysis in Progress",
			Body: "Dear customer,\n\n" +
				"Thank you for reporting the technical issue. Our engineering team has already started " +
				"a detailed investigation of the case you described. We understand how this may impact " +
				"your experience with our product.\n\n" +
				"We are working to identify the root cause and implement a solution. " +
				"You will receive updates on the progress, and as soon as we resolve it, " +
				"we will contact you immediately.\n\n" +
				"In the meantime, if you have any additional information that could help us, " +
				"feel free to reply to this email.\n\n" +
				"Best regards,\n" +
				"Technical Support Team",
		},
		"information_request": {
			Subject: "Re: Your Information Request",
			Body: "Hello,\n\n" +
				"Thank you for your interest! We have received your information request " +
				"and will be happy to help you with the details you need.\n\n" +
				"Our customer service team is preparing a complete and detailed response " +
				"to your question. You will receive all the requested information shortly, " +
				"along with additional materials that may be useful.\n\n" +
				"If you have other questions in the meantime, don't hesitate to contact us.\n\n" +
				"Best regards,\n" +
				"Customer Service Team",
		},
		"greeting": {
			Subject: "Re: Your Message",
			Body: "Hello,\n\n" +
				"We really appreciate your contact and kind words! " +
				"It's always a pleasure to hear from our customers.\n\n" +
				"We wish you all the best as well!\n\n" +
				"Best regards,\n" +
				"Support Team",
		},
		"complaint": {
			Subject: "Re: Your Feedback - High Priority",
			Body: "Dear customer,\n\n" +
				"We deeply regret the negative experience you had. " +
				"Your feedback is extremely important to us and we take all complaints very seriously.\n\n" +
				"Your situation has been escalated to our management with high priority. " +
				"We are committed to resolving this issue and ensuring your experience improves significantly. " +
				"A supervisor will personally contact you within 12 hours to discuss an appropriate solution.\n\n" +
				"Thank you for the opportunity to make this right.\n\n" +
				"Best regards,\n" +
				"Customer Service Management",
		},
		"spam": {
			Subject: "Re: Message Received",
			Body: "Hello,\n\n" +
				"Thank you for reaching out.\n\n" +
				"Best regards,\n" +
				"Support Team",
		},
	},
}
