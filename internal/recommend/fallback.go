package recommend

import (
	"fmt"
	"strings"
	"time"
)

// advice is one entry of the static fallback table. When WarnAboveC is set,
// Warning only applies above that temperature.
type advice struct {
	Title       string
	Description string
	Tips        []string
	Warning     string
	WarnAboveC  *int
}

func above(c int) *int { return &c }

var fallbackAdvice = map[ProfileType]map[string]advice{
	ProfileAthlete: {
		"rainy": {
			Title:       "Clima desfavorável para atividades ao ar livre",
			Description: "A chuva pode afetar seu desempenho e aumentar o risco de lesões.",
			Tips: []string{
				"Considere treinar em ambiente fechado hoje",
				"Se precisar treinar ao ar livre, use roupas impermeáveis",
				"Evite áreas com poças d'água e superfícies escorregadias",
				"Reduza a intensidade do treino devido às condições adversas",
			},
			Warning: "Risco de hipotermia em exposição prolongada à chuva",
		},
		"sunny": {
			Title:       "Bom clima para atividades ao ar livre",
			Description: "Aproveite o dia ensolarado para suas atividades físicas.",
			Tips: []string{
				"Use protetor solar e roupas leves",
				"Mantenha-se hidratado durante o treino",
				"Evite os horários de pico de calor (entre 11h e 15h)",
				"Leve água extra e considere paradas para descanso",
			},
			Warning:    "Risco de insolação em exposição prolongada ao sol",
			WarnAboveC: above(30),
		},
		"default": {
			Title:       "Recomendações para seu treino",
			Description: "Dicas gerais para suas atividades físicas hoje.",
			Tips: []string{
				"Verifique a previsão do tempo antes de sair",
				"Vista-se adequadamente para as condições climáticas",
				"Mantenha-se hidratado",
				"Tenha um plano alternativo caso o clima mude",
			},
		},
	},
	ProfileDriver: {
		"rainy": {
			Title:       "Condições adversas para direção",
			Description: "A chuva reduz a visibilidade e a aderência dos pneus.",
			Tips: []string{
				"Reduza a velocidade e aumente a distância de seguimento",
				"Ligue os faróis baixos para melhorar a visibilidade",
				"Evite freadas bruscas e manobras repentinas",
				"Verifique o funcionamento dos limpadores de para-brisa",
			},
			Warning: "Risco de aquaplanagem em áreas com acúmulo de água",
		},
		"sunny": {
			Title:       "Boas condições para dirigir",
			Description: "Tempo firme e boa visibilidade nas estradas.",
			Tips: []string{
				"Use óculos de sol para reduzir o ofuscamento",
				"Mantenha o para-brisa limpo",
				"Atenção ao sol baixo no início da manhã e no fim da tarde",
				"Verifique a calibragem dos pneus antes de viagens longas",
			},
		},
		"stormy": {
			Title:       "Alerta de granizo na região",
			Description: "Previsão de tempestade com granizo nas próximas horas.",
			Tips: []string{
				"Evite deslocamentos não essenciais",
				"Se estiver dirigindo, procure abrigo seguro como postos de gasolina com cobertura",
				"Reduza a velocidade e aumente a distância de seguimento",
				"Ligue os faróis baixos para melhorar a visibilidade",
			},
			Warning: "Granizo pode causar danos ao veículo e reduzir drasticamente a visibilidade",
		},
		"default": {
			Title:       "Recomendações para sua viagem",
			Description: "Dicas gerais para uma direção segura hoje.",
			Tips: []string{
				"Verifique as condições das estradas antes de sair",
				"Mantenha seu veículo em boas condições",
				"Respeite os limites de velocidade",
				"Tenha rotas alternativas em mente",
			},
		},
	},
	ProfileFarmer: {
		"rainy": {
			Title:       "Chuva favorável para cultivos",
			Description: "Aproveite a umidade para atividades específicas.",
			Tips: []string{
				"Bom momento para plantio de determinadas culturas",
				"Verifique sistemas de drenagem para evitar alagamentos",
				"Adie aplicação de defensivos que podem ser lavados pela chuva",
				"Monitore o acúmulo de água em áreas sensíveis",
			},
		},
		"sunny": {
			Title:       "Dia favorável para atividades ao ar livre",
			Description: "Aproveite o clima seco para tarefas específicas.",
			Tips: []string{
				"Bom momento para colheita e secagem de grãos",
				"Ideal para aplicação de defensivos (sem vento forte)",
				"Verifique a irrigação das culturas sensíveis ao calor",
				"Proteja trabalhadores do sol forte com pausas e hidratação",
			},
			Warning:    "Risco de estresse hídrico em culturas sensíveis",
			WarnAboveC: above(32),
		},
		"default": {
			Title:       "Recomendações para suas atividades agrícolas",
			Description: "Dicas gerais para o manejo da propriedade hoje.",
			Tips: []string{
				"Planeje as atividades de acordo com a previsão do tempo",
				"Priorize tarefas que se adequem às condições climáticas atuais",
				"Mantenha equipamentos preparados para mudanças no clima",
				"Monitore culturas sensíveis às variações climáticas",
			},
		},
	},
	ProfileTourist: {
		"rainy": {
			Title:       "Atividades para dia chuvoso",
			Description: "Não deixe a chuva atrapalhar sua experiência turística.",
			Tips: []string{
				"Visite museus, galerias e centros culturais",
				"Experimente a gastronomia local em restaurantes e cafés",
				"Aproveite atividades indoor como cinema, teatro ou shopping",
				"Leve um guarda-chuva ou capa de chuva para deslocamentos",
			},
		},
		"sunny": {
			Title:       "Dia perfeito para explorar ao ar livre",
			Description: "Aproveite o clima favorável para conhecer atrações externas.",
			Tips: []string{
				"Visite parques, praças e pontos turísticos ao ar livre",
				"Experimente passeios de barco ou atividades aquáticas",
				"Use protetor solar, óculos de sol e chapéu",
				"Mantenha-se hidratado durante os passeios",
			},
			Warning:    "Risco de insolação em exposição prolongada ao sol",
			WarnAboveC: above(30),
		},
		"default": {
			Title:       "Recomendações para seu passeio",
			Description: "Dicas gerais para aproveitar seu dia de turismo.",
			Tips: []string{
				"Verifique a previsão do tempo antes de sair",
				"Tenha planos alternativos para diferentes condições climáticas",
				"Leve roupas adequadas para mudanças no clima",
				"Consulte locais sobre as melhores atividades para o clima atual",
			},
		},
	},
	ProfileStudent: {
		"rainy": {
			Title:       "Dia ideal para estudos internos",
			Description: "Aproveite o clima chuvoso para focar nos estudos.",
			Tips: []string{
				"Organize seu material de estudo e crie um ambiente aconchegante",
				"Prepare uma bebida quente para acompanhar a sessão de estudos",
				"Utilize o som da chuva como concentração (ou use white noise)",
				"Planeje intervalos curtos para descanso mental",
			},
		},
		"sunny": {
			Title:       "Equilibre estudos e ar livre",
			Description: "Aproveite o dia ensolarado para estudar de forma diferente.",
			Tips: []string{
				"Considere estudar em um parque ou área externa com sombra",
				"Faça intervalos curtos para caminhar e tomar sol (vitamina D)",
				"Mantenha-se hidratado durante as sessões de estudo",
				"Alterne entre atividades internas e externas para manter o foco",
			},
		},
		"default": {
			Title:       "Recomendações para seus estudos",
			Description: "Dicas gerais para otimizar seu aprendizado hoje.",
			Tips: []string{
				"Organize seu ambiente de estudo de acordo com o clima",
				"Planeje pausas estratégicas para manter a concentração",
				"Mantenha água e lanches saudáveis por perto",
				"Adapte seu cronograma de estudos às condições do dia",
			},
		},
	},
}

// FallbackRecommendation synthesizes advice from the static table. The id is
// deterministic (fallback-{profile}-{condition}) and the result is never
// persisted. Conditions absent from the profile's table land on its default
// entry; the returned weatherCondition always reflects the requested one.
func FallbackRecommendation(profile ProfileType, condition string, temperatureC int) Recommendation {
	normalized := strings.ToLower(strings.TrimSpace(condition))

	table := fallbackAdvice[profile]
	entry, ok := table[normalized]
	if !ok {
		entry = table["default"]
	}

	var warning *string
	if entry.Warning != "" && (entry.WarnAboveC == nil || temperatureC > *entry.WarnAboveC) {
		w := entry.Warning
		warning = &w
	}

	now := time.Now().UTC()
	cond := normalized
	return Recommendation{
		ID:               fmt.Sprintf("fallback-%s-%s", profile, normalized),
		ProfileType:      profile,
		WeatherCondition: &cond,
		TemperatureMinC:  nil,
		TemperatureMaxC:  nil,
		Title:            entry.Title,
		Description:      entry.Description,
		Tips:             entry.Tips,
		Warning:          warning,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
