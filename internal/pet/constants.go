package pet

// Game constants
const (
	DefaultPetName = "Tama"
	MaxStat        = 100
	MinStat        = 0
	MaxTrait       = 100

	// Starting stats of a freshly created pet
	InitialHunger      = 80
	InitialHappiness   = 80
	InitialHealth      = 100
	InitialEnergy      = 80
	InitialHygiene     = 80
	InitialExploration = 100

	// Awake decay (per tick)
	AwakeHungerDecay      = 2
	AwakeHappinessDecay   = 1
	AwakeEnergyDecay      = 2
	AwakeHygieneDecay     = 2
	AwakeExplorationDecay = 2
	DirtyThreshold        = 30 // Hygiene below this makes the pet moody

	// Sleeping changes (per tick)
	SleepEnergyRecovery   = 10
	SleepHungerDecay      = 1
	SleepHappinessDecay   = 1
	SleepHygieneDecay     = 1
	SleepExplorationDecay = 1

	// Health side effects (per tick)
	StarvingThreshold   = 20
	StarvingHealthLoss  = 3
	MiseryThreshold     = 20
	MiseryHealthLoss    = 2
	ExhaustedThreshold  = 10
	ExhaustedHealthLoss = 1
	FilthyThreshold     = 20
	FilthyHealthLoss    = 2
	BoredThreshold      = 20
	BoredHappinessLoss  = 2

	// Recovery requires all four of these to be exceeded
	RecoveryHunger      = 80
	RecoveryHappiness   = 80
	RecoveryHygiene     = 60
	RecoveryExploration = 50
	RecoveryHealthGain  = 1

	// Feed
	FeedHungerIncrease    = 30
	FeedHappinessIncrease = 5
	OvereatThreshold      = 90

	// Play
	PlayMinEnergy           = 20
	PlayHappinessIncrease   = 20
	PlayEnergyDecrease      = 15
	PlayHygieneDecrease     = 5
	PlayExplorationIncrease = 10

	// Bath
	BathHygieneIncrease   = 40
	BathHappinessIncrease = 10
	BathEnergyDecrease    = 10
	FussyBathCount        = 3
	FussyBathHygiene      = 90

	// Walk
	WalkMinEnergy           = 30
	WalkExplorationIncrease = 50
	WalkHappinessIncrease   = 25
	WalkEnergyDecrease      = 25
	WalkHungerDecrease      = 10
	WalkHygieneDecrease     = 15

	// Sleep
	SleepEnergyBonus = 20

	// Heal
	HealHealthIncrease = 30
	HealEnergyDecrease = 10

	// Label thresholds
	HappyThreshold      = 70
	CalmThreshold       = 40
	GoodHealthThreshold = 70
	FairHealthThreshold = 40
	PoorHealthThreshold = 20
	NoWalkThreshold     = 80
	MaybeWalkThreshold  = 50
	WalkNeedThreshold   = 20
	NotableTrait        = 20 // Traits above this show up in PersonalityInfo

	// Status emojis
	StatusEmojiHappy    = "😸"
	StatusEmojiCalm     = "🙂"
	StatusEmojiSad      = "😿"
	StatusEmojiSleeping = "😴"
	StatusEmojiDead     = "💀"
)
