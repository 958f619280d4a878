package remedy

import (
	"sort"
	"strings"
)

// Remedy describes a single flower essence: the symptom phrases it is
// indicated for, the emotional state it addresses, and the essences it is
// commonly combined with.
type Remedy struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Symptoms       []string `json:"symptoms"`
	EmotionalState string   `json:"emotional_state"`
	RemedyFor      string   `json:"remedy_for"`
	Category       Category `json:"category"`
	Combinations   []string `json:"combinations"`
}

// IndexText concatenates the symptom phrases, emotional state and remedy
// description into the text that gets embedded for vector search.
func (r Remedy) IndexText() string {
	return strings.Join(r.Symptoms, " ") + " " + r.EmotionalState + " " + r.RemedyFor
}

// Get looks up a remedy by ID.
func Get(id string) (Remedy, bool) {
	r, ok := catalog[id]
	return r, ok
}

// All returns the full catalog keyed by remedy ID.
func All() map[string]Remedy {
	out := make(map[string]Remedy, len(catalog))
	for id, r := range catalog {
		out[id] = r
	}
	return out
}

// IDs returns every remedy ID in sorted order.
func IDs() []string {
	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Count returns the catalog size.
func Count() int { return len(catalog) }

var catalog = map[string]Remedy{
	"agrimony": {
		ID:             "agrimony",
		Name:           "Agrimony",
		Symptoms:       []string{"anxiety hidden behind cheerful mask", "inner torment", "worry concealed", "restlessness", "torture behind brave face", "mental anguish", "seeks company to avoid being alone with thoughts"},
		EmotionalState: "mental torture hidden behind cheerful facade",
		RemedyFor:      "Those who hide worries behind a happy mask",
		Category:       CategoryOversensitive,
		Combinations:   []string{"walnut", "mimulus", "white_chestnut"},
	},
	"aspen": {
		ID:             "aspen",
		Name:           "Aspen",
		Symptoms:       []string{"vague fears", "apprehension", "foreboding", "unknown fears", "nightmares", "anxiety without cause", "trembling", "nervousness"},
		EmotionalState: "fear of unknown things",
		RemedyFor:      "Vague unknown fears and anxieties",
		Category:       CategoryFear,
		Combinations:   []string{"mimulus", "cherry_plum", "rock_rose"},
	},
	"beech": {
		ID:             "beech",
		Name:           "Beech",
		Symptoms:       []string{"intolerance", "critical", "arrogance", "lack of compassion", "judgmental", "fault-finding", "irritability"},
		EmotionalState: "intolerance and criticism of others",
		RemedyFor:      "Intolerance and being overly critical",
		Category:       CategoryOvercare,
		Combinations:   []string{"willow", "impatiens", "vine"},
	},
	"centaury": {
		ID:             "centaury",
		Name:           "Centaury",
		Symptoms:       []string{"weakness of will", "subservience", "difficulty saying no", "eager to please", "easily influenced", "weak-willed", "doormat"},
		EmotionalState: "inability to say no",
		RemedyFor:      "Those who cannot say no and are easily exploited",
		Category:       CategoryOversensitive,
		Combinations:   []string{"walnut", "pine", "larch"},
	},
	"cerato": {
		ID:             "cerato",
		Name:           "Cerato",
		Symptoms:       []string{"lack of confidence in own judgment", "seeks advice constantly", "doubt own decisions", "easily influenced", "intuition distrust"},
		EmotionalState: "doubt in own wisdom",
		RemedyFor:      "Those who doubt their own judgment",
		Category:       CategoryUncertainty,
		Combinations:   []string{"scleranthus", "wild_oat", "gentian"},
	},
	"cherry_plum": {
		ID:             "cherry_plum",
		Name:           "Cherry Plum",
		Symptoms:       []string{"fear of losing control", "desperation", "fear of doing something terrible", "breakdown", "hysteria", "loss of reason"},
		EmotionalState: "fear of losing mental control",
		RemedyFor:      "Fear of losing control and desperate thoughts",
		Category:       CategoryFear,
		Combinations:   []string{"rock_rose", "aspen", "sweet_chestnut"},
	},
	"chestnut_bud": {
		ID:             "chestnut_bud",
		Name:           "Chestnut Bud",
		Symptoms:       []string{"failure to learn from experience", "repeating mistakes", "lack of observation", "carelessness", "inattention"},
		EmotionalState: "failure to learn from mistakes",
		RemedyFor:      "Those who repeat the same mistakes",
		Category:       CategoryInsufficientInterest,
		Combinations:   []string{"honeysuckle", "clematis", "wild_rose"},
	},
	"chicory": {
		ID:             "chicory",
		Name:           "Chicory",
		Symptoms:       []string{"possessiveness", "selfishness", "manipulation", "self-pity", "attention seeking", "controlling", "conditional love"},
		EmotionalState: "selfish possessive love",
		RemedyFor:      "Possessive love and self-centered care",
		Category:       CategoryOvercare,
		Combinations:   []string{"heather", "willow", "beech"},
	},
	"clematis": {
		ID:             "clematis",
		Name:           "Clematis",
		Symptoms:       []string{"dreamy", "absent-minded", "lack of interest in present", "escapism", "drowsiness", "inattention", "living in future"},
		EmotionalState: "dreamy inattention to present",
		RemedyFor:      "Dreaminess and lack of interest in present",
		Category:       CategoryInsufficientInterest,
		Combinations:   []string{"wild_rose", "chestnut_bud", "honeysuckle"},
	},
	"crab_apple": {
		ID:             "crab_apple",
		Name:           "Crab Apple",
		Symptoms:       []string{"self-disgust", "feeling unclean", "shame", "poor self-image", "obsession with details", "perfectionism"},
		EmotionalState: "self-hatred and disgust",
		RemedyFor:      "Self-disgust and feeling unclean",
		Category:       CategoryDespondency,
		Combinations:   []string{"pine", "larch", "elm"},
	},
	"elm": {
		ID:             "elm",
		Name:           "Elm",
		Symptoms:       []string{"overwhelm", "temporary inadequacy", "responsibility burden", "momentary loss of confidence", "feeling inadequate"},
		EmotionalState: "overwhelmed by responsibility",
		RemedyFor:      "Temporary feelings of being overwhelmed",
		Category:       CategoryDespondency,
		Combinations:   []string{"oak", "olive", "hornbeam"},
	},
	"gentian": {
		ID:             "gentian",
		Name:           "Gentian",
		Symptoms:       []string{"discouragement", "doubt", "setbacks affect easily", "pessimism", "depression from known cause"},
		EmotionalState: "discouragement from setbacks",
		RemedyFor:      "Discouragement and doubt from known causes",
		Category:       CategoryUncertainty,
		Combinations:   []string{"gorse", "mustard", "cerato"},
	},
	"gorse": {
		ID:             "gorse",
		Name:           "Gorse",
		Symptoms:       []string{"hopelessness", "despair", "giving up", "no faith in recovery", "pessimism", "lost hope"},
		EmotionalState: "hopelessness and despair",
		RemedyFor:      "Great hopelessness and despair",
		Category:       CategoryUncertainty,
		Combinations:   []string{"sweet_chestnut", "gentian", "wild_rose"},
	},
	"heather": {
		ID:             "heather",
		Name:           "Heather",
		Symptoms:       []string{"self-centered", "talkative", "attention seeking", "loneliness", "poor listener", "self-obsessed"},
		EmotionalState: "self-centered talkativeness",
		RemedyFor:      "Self-centeredness and constant need for attention",
		Category:       CategoryLoneliness,
		Combinations:   []string{"chicory", "impatiens", "water_violet"},
	},
	"holly": {
		ID:             "holly",
		Name:           "Holly",
		Symptoms:       []string{"hatred", "jealousy", "envy", "revenge", "suspicion", "anger", "vexation"},
		EmotionalState: "hatred and jealousy",
		RemedyFor:      "Hatred, envy, jealousy and revenge",
		Category:       CategoryOversensitive,
		Combinations:   []string{"willow", "beech", "vine"},
	},
	"honeysuckle": {
		ID:             "honeysuckle",
		Name:           "Honeysuckle",
		Symptoms:       []string{"living in past", "nostalgia", "regret", "homesickness", "dwelling on past", "loss of interest in present"},
		EmotionalState: "living in the past",
		RemedyFor:      "Living in the past and nostalgia",
		Category:       CategoryInsufficientInterest,
		Combinations:   []string{"clematis", "wild_rose", "chestnut_bud"},
	},
	"hornbeam": {
		ID:             "hornbeam",
		Name:           "Hornbeam",
		Symptoms:       []string{"mental fatigue", "procrastination", "tiredness before starting", "doubt in ability to cope", "weariness"},
		EmotionalState: "mental weariness",
		RemedyFor:      "Mental fatigue and procrastination",
		Category:       CategoryUncertainty,
		Combinations:   []string{"olive", "elm", "oak"},
	},
	"impatiens": {
		ID:             "impatiens",
		Name:           "Impatiens",
		Symptoms:       []string{"impatience", "irritability", "hasty", "tension", "intolerance of slow pace", "quick thinking"},
		EmotionalState: "impatience and irritability",
		RemedyFor:      "Impatience and irritability with others",
		Category:       CategoryLoneliness,
		Combinations:   []string{"beech", "heather", "vine"},
	},
	"larch": {
		ID:             "larch",
		Name:           "Larch",
		Symptoms:       []string{"lack of confidence", "expects failure", "inferiority complex", "hesitation", "despondency"},
		EmotionalState: "lack of confidence",
		RemedyFor:      "Lack of confidence and expectation of failure",
		Category:       CategoryDespondency,
		Combinations:   []string{"cerato", "centaury", "pine"},
	},
	"mimulus": {
		ID:             "mimulus",
		Name:           "Mimulus",
		Symptoms:       []string{"fear of known things", "shyness", "timidity", "nervousness", "anxiety about specific things", "phobias"},
		EmotionalState: "fear of known things",
		RemedyFor:      "Fear of known things and shyness",
		Category:       CategoryFear,
		Combinations:   []string{"aspen", "larch", "agrimony"},
	},
	"mustard": {
		ID:             "mustard",
		Name:           "Mustard",
		Symptoms:       []string{"depression without cause", "gloom", "melancholy", "sadness", "dark cloud feeling"},
		EmotionalState: "deep depression without reason",
		RemedyFor:      "Deep depression that comes and goes without reason",
		Category:       CategoryInsufficientInterest,
		Combinations:   []string{"gentian", "gorse", "sweet_chestnut"},
	},
	"oak": {
		ID:             "oak",
		Name:           "Oak",
		Symptoms:       []string{"exhaustion but keeps going", "never gives up", "duty bound", "stubborn persistence", "overwork"},
		EmotionalState: "exhausted but struggling on",
		RemedyFor:      "Those who struggle on despite exhaustion",
		Category:       CategoryDespondency,
		Combinations:   []string{"elm", "olive", "hornbeam"},
	},
	"olive": {
		ID:             "olive",
		Name:           "Olive",
		Symptoms:       []string{"complete exhaustion", "drained", "no reserves left", "worn out", "fatigue"},
		EmotionalState: "complete mental and physical exhaustion",
		RemedyFor:      "Complete exhaustion of mind and body",
		Category:       CategoryInsufficientInterest,
		Combinations:   []string{"oak", "elm", "hornbeam"},
	},
	"pine": {
		ID:             "pine",
		Name:           "Pine",
		Symptoms:       []string{"guilt", "self-reproach", "blame self for others' mistakes", "never satisfied with efforts", "apologetic"},
		EmotionalState: "guilt and self-reproach",
		RemedyFor:      "Guilt and self-reproach",
		Category:       CategoryDespondency,
		Combinations:   []string{"crab_apple", "larch", "centaury"},
	},
	"red_chestnut": {
		ID:             "red_chestnut",
		Name:           "Red Chestnut",
		Symptoms:       []string{"excessive worry for others", "fearful for loved ones", "anxiety for others' wellbeing", "over-concern"},
		EmotionalState: "excessive concern for others",
		RemedyFor:      "Excessive worry and fear for others",
		Category:       CategoryOvercare,
		Combinations:   []string{"chicory", "vine", "beech"},
	},
	"rescue_remedy": {
		ID:             "rescue_remedy",
		Name:           "Rescue Remedy",
		Symptoms:       []string{"emergency", "trauma", "shock", "panic", "crisis", "stress", "accident"},
		EmotionalState: "emergency and crisis situations",
		RemedyFor:      "Emergency situations, trauma, shock and crisis",
		Category:       CategoryEmergency,
		Combinations:   []string{"rock_rose", "impatiens", "cherry_plum", "star_of_bethlehem", "clematis"},
	},
	"rock_rose": {
		ID:             "rock_rose",
		Name:           "Rock Rose",
		Symptoms:       []string{"terror", "panic", "nightmare", "extreme fear", "helplessness", "emergency"},
		EmotionalState: "extreme terror and panic",
		RemedyFor:      "Terror, panic and extreme fear",
		Category:       CategoryFear,
		Combinations:   []string{"cherry_plum", "aspen", "mimulus"},
	},
	"rock_water": {
		ID:             "rock_water",
		Name:           "Rock Water",
		Symptoms:       []string{"self-denial", "rigidity", "self-discipline", "hard on self", "strict principles", "inflexibility"},
		EmotionalState: "rigid self-discipline",
		RemedyFor:      "Self-denial and rigid adherence to principles",
		Category:       CategoryOvercare,
		Combinations:   []string{"vine", "beech", "oak"},
	},
	"scleranthus": {
		ID:             "scleranthus",
		Name:           "Scleranthus",
		Symptoms:       []string{"indecision", "uncertainty between choices", "mood swings", "hesitation", "vacillation"},
		EmotionalState: "indecision between alternatives",
		RemedyFor:      "Indecision and uncertainty between two choices",
		Category:       CategoryUncertainty,
		Combinations:   []string{"cerato", "wild_oat", "gentian"},
	},
	"star_of_bethlehem": {
		ID:             "star_of_bethlehem",
		Name:           "Star of Bethlehem",
		Symptoms:       []string{"shock", "trauma", "grief", "distress", "after-effects of shock", "comfort"},
		EmotionalState: "shock and trauma",
		RemedyFor:      "Shock, trauma and grief",
		Category:       CategoryDespondency,
		Combinations:   []string{"sweet_chestnut", "willow", "pine"},
	},
	"sweet_chestnut": {
		ID:             "sweet_chestnut",
		Name:           "Sweet Chestnut",
		Symptoms:       []string{"extreme mental anguish", "despair", "limit of endurance", "dark night of soul", "hopelessness"},
		EmotionalState: "extreme mental anguish",
		RemedyFor:      "Extreme mental anguish and despair",
		Category:       CategoryDespondency,
		Combinations:   []string{"gorse", "cherry_plum", "star_of_bethlehem"},
	},
	"vervain": {
		ID:             "vervain",
		Name:           "Vervain",
		Symptoms:       []string{"over-enthusiasm", "fanaticism", "strain", "tension", "fixed ideas", "missionary zeal"},
		EmotionalState: "over-enthusiasm and strain",
		RemedyFor:      "Over-enthusiasm and fixed ideas",
		Category:       CategoryOvercare,
		Combinations:   []string{"vine", "impatiens", "beech"},
	},
	"vine": {
		ID:             "vine",
		Name:           "Vine",
		Symptoms:       []string{"dominating", "inflexible", "tyrannical", "arrogant", "ruthless", "ambitious", "leadership"},
		EmotionalState: "domination and inflexibility",
		RemedyFor:      "Dominating behavior and inflexibility",
		Category:       CategoryOvercare,
		Combinations:   []string{"beech", "vervain", "impatiens"},
	},
	"walnut": {
		ID:             "walnut",
		Name:           "Walnut",
		Symptoms:       []string{"influenced by others", "life changes", "transition", "protection from change", "easily led"},
		EmotionalState: "influenced by change and others",
		RemedyFor:      "Protection during change and transition",
		Category:       CategoryOversensitive,
		Combinations:   []string{"centaury", "cerato", "agrimony"},
	},
	"water_violet": {
		ID:             "water_violet",
		Name:           "Water Violet",
		Symptoms:       []string{"pride", "aloofness", "superiority", "independence", "withdrawn", "self-reliant"},
		EmotionalState: "proud aloofness",
		RemedyFor:      "Pride and aloof superiority",
		Category:       CategoryLoneliness,
		Combinations:   []string{"impatiens", "heather", "vine"},
	},
	"white_chestnut": {
		ID:             "white_chestnut",
		Name:           "White Chestnut",
		Symptoms:       []string{"persistent thoughts", "mental arguments", "worrying thoughts", "insomnia", "racing mind"},
		EmotionalState: "persistent unwanted thoughts",
		RemedyFor:      "Persistent unwanted thoughts and mental arguments",
		Category:       CategoryInsufficientInterest,
		Combinations:   []string{"agrimony", "clematis", "mustard"},
	},
	"wild_oat": {
		ID:             "wild_oat",
		Name:           "Wild Oat",
		Symptoms:       []string{"uncertainty about life path", "ambition without direction", "dissatisfaction", "unclear goals"},
		EmotionalState: "uncertainty about life direction",
		RemedyFor:      "Uncertainty about life direction and goals",
		Category:       CategoryUncertainty,
		Combinations:   []string{"scleranthus", "cerato", "gentian"},
	},
	"wild_rose": {
		ID:             "wild_rose",
		Name:           "Wild Rose",
		Symptoms:       []string{"apathy", "resignation", "lack of interest", "drift through life", "no effort", "acceptance of fate"},
		EmotionalState: "resignation and apathy",
		RemedyFor:      "Apathy and resignation to circumstances",
		Category:       CategoryInsufficientInterest,
		Combinations:   []string{"clematis", "honeysuckle", "gorse"},
	},
	"willow": {
		ID:             "willow",
		Name:           "Willow",
		Symptoms:       []string{"resentment", "bitterness", "self-pity", "victim mentality", "blame others", "grudges"},
		EmotionalState: "resentment and bitterness",
		RemedyFor:      "Resentment and bitter thoughts",
		Category:       CategoryDespondency,
		Combinations:   []string{"holly", "beech", "chicory"},
	},}
