// Package site holds the static copy of the Charro site and the small
// pieces of UI state built on it: the navigation bar and the services
// tab selection.
package site

// Brand is the name shown in the navigation bar.
const Brand = "Charro"

// Link is one navigation entry: a label and the anchor it points at.
type Link struct {
	Label  string
	Anchor string
}

const (
	AnchorHome     = "#home"
	AnchorServices = "#services"
	AnchorContact  = "#contact"
)

// NavLinks are the navigation entries in display order.
var NavLinks = []Link{
	{Label: "Home", Anchor: AnchorHome},
	{Label: "Services", Anchor: AnchorServices},
	{Label: "Contact", Anchor: AnchorContact},
}

// HeroCopy is the landing page text.
type HeroCopy struct {
	Badge    string
	Headline string
	Accent   string
	Lead     string
	Primary  Link
	Contact  Link
}

var Hero = HeroCopy{
	Badge:    "Servicios y Consultoría Digital",
	Headline: "Transformamos ideas en",
	Accent:   "Excelencia Digital",
	Lead: "En Charro.ai revolucionamos la transformación digital. Impulsamos tu adopción " +
		"de Inteligencia Artificial, fusionamos tecnologías y potenciamos la comunicación " +
		"empresarial mediante WhatsApp, todo con un enfoque estratégico que convierte cada " +
		"reto en una oportunidad de innovación.",
	Primary: Link{Label: "Servicios", Anchor: AnchorServices},
	Contact: Link{Label: "Contacto", Anchor: AnchorContact},
}

// Icon names the pictogram shown next to a service.
type Icon string

const (
	IconMonitor   Icon = "monitor"
	IconHandshake Icon = "handshake"
	IconMessage   Icon = "message-circle"
	IconWrench    Icon = "wrench"
	IconGlobe     Icon = "globe"
	IconZap       Icon = "zap"
)

// Service is one entry of the services showcase.
type Service struct {
	Icon        Icon
	Title       string
	Description string
	Details     []string
}

const (
	ServicesTitle    = "Nuestros Servicios"
	ServicesSubtitle = "Impulsamos la transformación digital de tu negocio con soluciones integrales, " +
		"diseñadas especialmente para satisfacer tus necesidades únicas."
	ServicesNavTitle = "Soluciones"
	OfferHeading     = "Lo que ofrecemos:"
	RequestInfo      = "Solicitar información"
)

// Services is the fixed, ordered catalogue.
var Services = []Service{
	{
		Icon:        IconMonitor,
		Title:       "Adopción de IA",
		Description: "Impulsamos la innovación en tu negocio mediante estrategias personalizadas de IA.",
		Details: []string{
			"Evaluación de capacidades y necesidades para integración de IA",
			"Desarrollo de soluciones de IA personalizadas",
			"Implementación de chatbots y asistentes virtuales",
			"Automatización de procesos mediante algoritmos inteligentes",
			"Capacitación al personal en nuevas tecnologías de IA",
		},
	},
	{
		Icon:        IconHandshake,
		Title:       "Integración de sistemas",
		Description: "Conectamos y personalizamos tus sistemas para maximizar la eficiencia de tu operacion.",
		Details: []string{
			"Análisis de sistemas actuales y evaluación de compatibilidad",
			"Diseño de arquitectura para integración eficiente",
			"Implementación de APIs y middleware personalizado",
			"Migración de datos entre plataformas",
			"Configuración de automatizaciones entre sistemas",
		},
	},
	{
		Icon:        IconMessage,
		Title:       "Comunicación empresarial vía WhatsApp",
		Description: "Fortalecemos la interacción corporativa implementando soluciones integradas de WhatsApp.",
		Details: []string{
			"Desarrollo de chatbots para WhatsApp Business",
			"Integración con CRM y sistemas de gestión",
			"Automatización de campañas y notificaciones",
			"Análisis de datos de interacción con clientes",
			"Implementación de sistemas de respuesta inteligente",
		},
	},
	{
		Icon:  IconWrench,
		Title: "Consultoría de herramientas",
		Description: "Evaluamos tus procesos y tecnologías actuales para identificar oportunidades de " +
			"automatización y optimización, reduciendo tiempos y costos con soluciones de Software (SaaS).",
		Details: []string{
			"Auditoría completa de herramientas tecnológicas actuales",
			"Análisis de procesos y flujos de trabajo",
			"Recomendación de soluciones SaaS adaptadas a necesidades específicas",
			"Evaluación de costos y retorno de inversión",
			"Plan de implementación y capacitación",
		},
	},
	{
		Icon:  IconGlobe,
		Title: "Marketing Digital",
		Description: "Revolucionamos la presencia de tu marca en el entorno digital mediante estrategias " +
			"innovadoras que impulsan el engagement y generan resultados medibles.",
		Details: []string{
			"Estrategias de posicionamiento SEO y SEM",
			"Gestión de redes sociales y contenido digital",
			"Diseño de campañas publicitarias digitales",
			"Análisis de métricas y optimización de conversiones",
			"Desarrollo de identidad de marca digital",
		},
	},
	{
		Icon:  IconZap,
		Title: "Automatización",
		Description: "Optimiza tus procesos mediante soluciones tecnológicas que liberan recursos, " +
			"reducen costos y aceleran tu productividad.",
		Details: []string{
			"Identificación de procesos repetitivos susceptibles de automatización",
			"Desarrollo de flujos de trabajo automatizados",
			"Implementación de RPA (Robotic Process Automation)",
			"Integración con sistemas existentes",
			"Monitoreo y optimización continua de procesos",
		},
	},
}
