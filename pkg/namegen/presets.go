package namegen

// Built-in patterns. They are plain grammar strings; compile them like any
// other pattern.
const (
	// Middle Earth
	MiddleEarth = "(bil|bal|ban|hil|ham|hal|hol|hob|wil|me|or|ol|od|gor|for|fos|tol|ar|fin|ere|leo|vi|bi|bren|thor)(|go|orbis|apol|adur|mos|ri|i|na|ole|n)(|tur|axia|and|bo|gil|bin|bras|las|mac|grim|wise|l|lo|fo|co|ra|via|da|ne|ta|y|wen|thiel|phin|dir|dor|tor|rod|on|rdo|dis)"

	// Japanese names, constrained
	JapaneseConstrained = "(aka|aki|bashi|gawa|kawa|furu|fuku|fuji|hana|hara|haru|hashi|hira|hon|hoshi|ichi|iwa|kami|kawa|ki|kita|kuchi|kuro|marui|matsu|miya|mori|moto|mura|nabe|naka|nishi|no|da|ta|o|oo|oka|saka|saki|sawa|shita|shima|i|suzu|taka|take|to|toku|toyo|ue|wa|wara|wata|yama|yoshi|kei|ko|zawa|zen|sen|ao|gin|kin|ken|shiro|zaki|yuki|asa)(||||||||||bashi|gawa|kawa|furu|fuku|fuji|hana|hara|haru|hashi|hira|hon|hoshi|chi|wa|ka|kami|kawa|ki|kita|kuchi|kuro|marui|matsu|miya|mori|moto|mura|nabe|naka|nishi|no|da|ta|o|oo|oka|saka|saki|sawa|shita|shima|suzu|taka|take|to|toku|toyo|ue|wa|wara|wata|yama|yoshi|kei|ko|zawa|zen|sen|ao|gin|kin|ken|shiro|zaki|yuki|sa)"

	// Japanese names, diverse
	JapaneseDiverse = "(a|i|u|e|o|||||)(ka|ki|ki|ku|ku|ke|ke|ko|ko|sa|sa|sa|shi|shi|shi|su|su|se|so|ta|ta|chi|chi|tsu|te|to|na|ni|ni|nu|nu|ne|no|no|ha|hi|fu|fu|he|ho|ma|ma|ma|mi|mi|mi|mu|mu|mu|mu|me|mo|mo|mo|ya|yu|yu|yu|yo|ra|ra|ra|ri|ru|ru|ru|re|ro|ro|ro|wa|wa|wa|wa|wo|wo)(ka|ki|ki|ku|ku|ke|ke|ko|ko|sa|sa|sa|shi|shi|shi|su|su|se|so|ta|ta|chi|chi|tsu|te|to|na|ni|ni|nu|nu|ne|no|no|ha|hi|fu|fu|he|ho|ma|ma|ma|mi|mi|mi|mu|mu|mu|mu|me|mo|mo|mo|ya|yu|yu|yu|yo|ra|ra|ra|ri|ru|ru|ru|re|ro|ro|ro|wa|wa|wa|wa|wo|wo)(|(ka|ki|ki|ku|ku|ke|ke|ko|ko|sa|sa|sa|shi|shi|shi|su|su|se|so|ta|ta|chi|chi|tsu|te|to|na|ni|ni|nu|nu|ne|no|no|ha|hi|fu|fu|he|ho|ma|ma|ma|mi|mi|mi|mu|mu|mu|mu|me|mo|mo|mo|ya|yu|yu|yu|yo|ra|ra|ra|ri|ru|ru|ru|re|ro|ro|ro|wa|wa|wa|wa|wo|wo)|(ka|ki|ki|ku|ku|ke|ke|ko|ko|sa|sa|sa|shi|shi|shi|su|su|se|so|ta|ta|chi|chi|tsu|te|to|na|ni|ni|nu|nu|ne|no|no|ha|hi|fu|fu|he|ho|ma|ma|ma|mi|mi|mi|mu|mu|mu|mu|me|mo|mo|mo|ya|yu|yu|yu|yo|ra|ra|ra|ri|ru|ru|ru|re|ro|ro|ro|wa|wa|wa|wa|wo|wo)(|(ka|ki|ki|ku|ku|ke|ke|ko|ko|sa|sa|sa|shi|shi|shi|su|su|se|so|ta|ta|chi|chi|tsu|te|to|na|ni|ni|nu|nu|ne|no|no|ha|hi|fu|fu|he|ho|ma|ma|ma|mi|mi|mi|mu|mu|mu|mu|me|mo|mo|mo|ya|yu|yu|yu|yo|ra|ra|ra|ri|ru|ru|ru|re|ro|ro|ro|wa|wa|wa|wa|wo|wo)))(|||n)"

	// Chinese names
	Chinese = "(zh|x|q|sh|h)(ao|ian|uo|ou|ia)(|(l|w|c|p|b|m)(ao|ian|uo|ou|ia)(|n)|-(l|w|c|p|b|m)(ao|ian|uo|ou|ia)(|(d|j|q|l)(a|ai|iu|ao|i)))"

	// Greek names
	Greek = "<s<v|V>(tia)|s<v|V>(os)|B<v|V>c(ios)|B<v|V><c|C>v(ios|os)>"

	// Hawaiian names, first style
	Hawaiian1 = "((h|k|l|m|n|p|w|')|)(a|e|i|o|u)((h|k|l|m|n|p|w|')|)(a|e|i|o|u)(((h|k|l|m|n|p|w|')|)(a|e|i|o|u)|)(((h|k|l|m|n|p|w|')|)(a|e|i|o|u)|)(((h|k|l|m|n|p|w|')|)(a|e|i|o|u)|)(((h|k|l|m|n|p|w|')|)(a|e|i|o|u)|)"

	// Hawaiian names, second style
	Hawaiian2 = "((h|k|l|m|n|p|w|)(a|e|i|o|u|a'|e'|i'|o'|u'|ae|ai|ao|au|oi|ou|eu|ei)(k|l|m|n|p|)|)(h|k|l|m|n|p|w|)(a|e|i|o|u|a'|e'|i'|o'|u'|ae|ai|ao|au|oi|ou|eu|ei)(k|l|m|n|p|)"

	// Old Latin place names
	OldLatinPlace = "sv(nia|lia|cia|sia)"

	// Dragons of Pern
	DragonsPern = "<<s|ss>|<VC|vC|B|BVs|Vs>><v|V|v|<v(l|n|r)|vc>>(th)"

	// Dragon riders
	DragonRiders = "c'<s|cvc>"

	// Pokemon
	Pokemon = "<i|s>v(mon|chu|zard|rtle)"

	// Fantasy, vowels and R
	FantasyVowelsR = "(|(<B>|s|h|ty|ph|r))(i|ae|ya|ae|eu|ia|i|eo|ai|a)(lo|la|sri|da|dai|the|sty|lae|due|li|lly|ri|na|ral|sur|rith)(|(su|nu|sti|llo|ria|))(|(n|ra|p|m|lis|cal|deu|dil|suir|phos|ru|dru|rin|raap|rgue))"

	// Fantasy, S and A
	FantasySA = "(cham|chan|jisk|lis|frich|isk|lass|mind|sond|sund|ass|chad|lirt|und|mar|lis|il|<BVC>)(jask|ast|ista|adar|irra|im|ossa|assa|osia|ilsa|<vCv>)(|(an|ya|la|sta|sda|sya|st|nya))"

	// Fantasy, H and L
	FantasyHL = "(ch|ch't|sh|cal|val|ell|har|shar|shal|rel|laen|ral|jh't|alr|ch|ch't|av)(|(is|al|ow|ish|ul|el|ar|iel))(aren|aeish|aith|even|adur|ulash|alith|atar|aia|erin|aera|ael|ira|iel|ahur|ishul)"

	// Fantasy, N and L
	FantasyNL = "(ethr|qil|mal|er|eal|far|fil|fir|ing|ind|il|lam|quel|quar|quan|qar|pal|mal|yar|um|ard|enn|ey)(|(<vc>|on|us|un|ar|as|en|ir|ur|at|ol|al|an))(uard|wen|arn|on|il|ie|on|iel|rion|rian|an|ista|rion|rian|cil|mol|yon)"

	// Fantasy, K and N
	FantasyKN = "(taith|kach|chak|kank|kjar|rak|kan|kaj|tach|rskal|kjol|jok|jor|jad|kot|kon|knir|kror|kol|tul|rhaok|rhak|krol|jan|kag|ryr)(<vc>|in|or|an|ar|och|un|mar|yk|ja|arn|ir|ros|ror)(|(mund|ard|arn|karr|chim|kos|rir|arl|kni|var|an|in|ir|a|i|as))"

	// Fantasy, J, G and Z
	FantasyJGZ = "(aj|ch|etz|etzl|tz|kal|gahn|kab|aj|izl|ts|jaj|lan|kach|chaj|qaq|jol|ix|az|biq|nam)(|(<vc>|aw|al|yes|il|ay|en|tom||oj|im|ol|aj|an|as))(aj|am|al|aqa|ende|elja|ich|ak|ix|in|ak|al|il|ek|ij|os|al|im)"

	// Fantasy, K, J and Y
	FantasyKJY = "(yi|shu|a|be|na|chi|cha|cho|ksa|yi|shu)(th|dd|jj|sh|rr|mk|n|rk|y|jj|th)(us|ash|eni|akra|nai|ral|ect|are|el|urru|aja|al|uz|ict|arja|ichi|ural|iru|aki|esh)"

	// Fantasy, S and E
	FantasySE = "(syth|sith|srr|sen|yth|ssen|then|fen|ssth|kel|syn|est|bess|inth|nen|tin|cor|sv|iss|ith|sen|slar|ssil|sthen|svis|s|ss|s|ss)(|(tys|eus|yn|of|es|en|ath|elth|al|ell|ka|ith|yrrl|is|isl|yr|ast|iy))(us|yn|en|ens|ra|rg|le|en|ith|ast|zon|in|yn|ys)"

	// Surname first halves
	Prefixes = "(ash|bane|blaze|bolt|dawn|dusk|ember|frost|gale|gloom|haze|blaze|mist|moon|night|rain|shade|shine|sky|smoke|snow|storm|sun|swift|thorn|tide|vex|wind|wisp|abyss|arc|art|brave|brook|chaos|cliff|dark|death|dream|edge|fear|flame|forest|fury|ghost|gold|hill|ice|iron|jewel|knight|lake|light|misty|ocean|rage|river|shadow|silver|sky|stone|thunder|valley|wolf|aqua|aurora|blaze|bronze|canyon|comet|crimson|crystal|cyclone|diamond|dragon|echo|eclipse|enigma|flame|flare|forest|fossil|garnet|granite|gravity|hawk|hurricane|hydra|indigo|inferno|ivory|jasper|jester|justice|lava|legacy|lightning|lumin|magenta|magnet|marvel|maze|meteor|midnight|mirage|mistral|nebula|nightfall|oasis|obsidian|onyx|opal|oracle|ozone|panther|paradise|paragon|phoenix|plasma|platinum|prism|pulse|pyrite|quartz|rainbow|raven|regal|river|ruby|rust|sapphire|scarlet|shadow|silver|solar|spark|sphinx|spectrum|sphinx|spice|star|stealth|steel|stone|suede|surge|swift|tangerine|tempest|thistle|thunderbolt|tidal|titan|tundra|twilight|typhoon|vandal|vector|velvet|velocity|venture|vortex|waterfall|wildfire|willow|winter|wraith|xenon|xylophone|yellow|zenith|zephyr)"

	// Surname second halves
	Suffixes = "(blade|bane|busrt|claw|dawn|dusk|fang|flame|frost|gale|gloom|glow|haze|heart|hunt|hunter|light|moon|night|rain|shade|shine|sky|smoke|snow|spark|spirit|storm|sun|surge|swift|thorn|tide|wing|wind|angel|arrow|bolt|claw|crown|crystal|dagger|dragon|fang|feather|flame|flower|heart|hunter|justice|light|mark|moon|queen|rain|shield|silver|song|spark|star|steel|stone|storm|sword|thief|thorn|thunder|wolf|amber|ash|aurora|blossom|bolt|burst|canyon|chill|circle|claw|cloud|crest|crystal|daisy|dream|edge|ember|enigma|essence|fang|fern|flame|flare|flora|flower|frost|ghost|gleam|glory|heart|haze|hunter|hurricane|ice|ivory|jewel|lance|leaf|lightning|lily|luster|maelstrom|meadow|mist|nebula|ocean|opal|panther|peak|pearl|pebble|phoenix|quake|quest|quill|radiance|raven|ray|reef|ripple|roar|rose|sabre|sapphire|serpent|shadow|shard|silver|sinew|sky|slate|snowflake|sparkle|sphere|spirit|star|stone|storm|stream|swirl|tidal|tornado|trail|tranquility|tremor|trinity|tusk|twilight|unity|veil|vengeance|vine|vortex|wave|whirl|wildflower|willow|windchaser|winter|wish|wonder|wood|wyrm|zenith|zephyr|zinc)"

	// Male given names
	MaleGiven = "(aiden|alaric|alden|alphonse|amadeus|ambrose|arcturus|argus|arin|arlo|asher|ashton|atticus|augustus|aurelian|axel|axl|baird|barrett|bastian|beowulf|blaise|balthazar|caedmon|caius|callahan|callum|caspian|castor|cedric|cian|colton|conrad|cormac|cyrus|darian|dante|darion|darius|declan|demetrius|derek|desmond|dorian|draco|draven|drexel|easton|edmund|edward|edwin|eldon|elric|emery|emrys|endymion|enzo|ephraim|eran|eros|eryx|estevan|ethan|evander|everett|ezekiel|falkor|farley|finnegan|galen|garrick|gavin|gavriel|gideon|godfrey|granger|greer|gregory|griffin|gulliver|hadrian|hakon|halcyon|harper|harrington|harrison|hawthorne|heathcliff|henrik|holden|horatio|hunter|ian|ignatius|ilias|immanuel|indigo|ioan|ira|isaac|isaias|ishaq|ivar|ivor|jagger|jareth|jarek|jaron|jasper|jax|jayce|jayden|jedidiah|jensen|jeremiah|jericho|jett|jonas|jonathan|jorah|jotham|julian|kaelan|kaiden|kain|kaison|kale|kaleo|kalen|kameron|kane|kano|karsten|kasimir|kato|keanu|keaton|keir|kellan|keller|kelton|kelvin|kemper|kendrick|kenji|kenton|keon|kermit|kestrel|khalid|kilian|lachlan|laird|landon|langdon|leif|lennox|leo|leon|leopold|lev|levi|liam|linus|llewellyn|lochlan|locke|logan|loran|lorcan|lorenzo|lorne|lucan|lucian|ludovic|luka|luther|lysander|macsen|maddox|magnus|malachi|malik|maren|marius|marley|marlon|marsden|maxim|maximilian|maxwell|merle|merrick|micah|michael|miles|miller|milo|mitchell|montague|montgomery|morgan|mordecai|morgan|morpheus|mortimer|murphy|naoise|napoleon|nash|nathaniel|nemo|nero|nevan|neville|nico|noah|noble|nolan|norbert|norman|norton|oisin|oliver|omar|orion|orson|osborn|oswald|othello|otis|otto|owen|padraig|paladin|parker|pascal|patrick|paul|paxton|peregrine|perrin|peter|pierce|piers|porter|preston|price|quade|quinlan|quinn|quirin|ragnar|rainer|raleigh|ramsay|ramson|randall|randolph|ransom|raphael|raul|rawley|raynor|reed|reginald|remington|remy|ren|renley|reuben|rex|rhett|richard|ridge|ridley|rio|riven|river|roarke|robert|robin|roderick|rodrigo|roger|roland|roman|ronan|roosevelt|roscoe|ross|rowan|roy|royce|rupert|rush|russell|ryan|ryder|sage|salem|salvatore|sam|samuel|santiago|sawyer|saxon|scott|seamus|sebastian|seneca|seth|shane|shaun|sheldon|shepard|sherman|silas|simon|sinclair|skylar|slade|smith|solomon|spencer|stellan|sterling|stone|sullivan|sven|sylvester|tadhg|talon|tarek|tate|tavian|taylor|teagan|ted|thaddeus|theo|theodore|theron|thomas|thor|thorin|thorne|tiernan|tiger|timothy|titus|tobias|todd|tom|tommy|torin|torsten|trace|travis|trent|trey|tristam|tristan|troy|tucker|turner|ty|tyler|tyrone|ulysses|uriah|uriel|valen|valentine|vance|vaughn|victor|vincent|vincenzo|virgil|vlad|wade|walker|wallace|walt|walter|warren|waylon|webb|wesley|weston|wheeler|wiley|wilfred|will|william|wilmer|wilson|winston|wolfgang|woodrow|wyatt|xander|xavier|yazan|york|yves|zachariah|zane|zavier|zayne|zeno|zephyr|zeus|zigmund|zoltan)"

	// Female given names
	FemaleGiven = "(aeliana|aerin|aida|althea|amara|anara|aria|arwen|asha|aurora|avalon|brigid|calantha|calypso|cassia|celandine|celestia|cerys|cordelia|dariana|delilah|drusilla|elara|elena|elowen|elysia|ember|emrys|enid|eowyn|esmeralda|estelle|evangeline|fae|faye|freya|galadriel|ginevra|gwendolyn|halia|harper|hazel|imogen|isadora|isolde|jocasta|kaida|kaliyah|katarina|kiara|lark|lavinia|lilith|lorelei|lucinda|luna|lyra|maeve|magnolia|maren|marigold|melisande|meridian|merida|minerva|morgana|nadia|niamh|nyx|ophelia|oriana|pallas|penelope|persephone|phoenix|primrose|quilla|raine|raven|ravenna|rosalind|rosamund|rowan|sabrina|salome|seraphina|sirena|solstice|suri|tabitha|tahlia|thalia|theodora|titania|vesper|victoria|violet|vivienne|winter|zara|abigail|adalyn|adelaide|adeline|adira|agatha|aisha|akira|alaina|alaska|aleah|alessia|alexia|aliana|aliza|althea|alyson|amalia|amaris|ambrosia|amelie|amethyst|anabelle|anastasia|andromeda|angelica|anika|anora|antoinette|arabella|arabelle|arden|ariadne|arianna|artemis|arya|ashlyn|aspasia|asteria|athena|audrey|aurelia|aurielle|aurora|autumn|aveline|averie|azalea|briar|briella|brinley|bronte|brynn|cadence|calla|calliope|calypso|camila|camille|candace|caoimhe|cara|carina|carmen|carolina|casey|cassidy|catalina|cate|cecelia|celeste|celia|charity|charlotte|chelsea|cherise|chiara|chloe|christa|ciel|cilla|claire|clara|clarissa|claudette|cleo|coco|colette|colleen|constance|coralie|cordelia|corinna|cornelia|cosette|crescent|crystal|cynthia|dahlia|daisy|dakota|dale|dalia|dallas|dana|daniella|daphne|darcy|daria|darla|davina|daya|dayna|deanna|deborah|delaney|demeter|denise|desirae|destiny|devyn|diana|dido|dione|dixie|dominique|dora|doreen|dorothea|dove|drucilla|dulce|dune|eabha|ebony|eden|edie|edith|edna|effie|eileen|eira|elaina|elaine|elayne|eleanor|eleanora|eleni|eleri|elfie|elia|elina|elisa|elisabeth|elise|eliza|elizabeth|elke|ella|elle|ellen|ellie|elsa|elsie|elvira|emberly|emerald|emilia|emily|emma|emmalyn|emmy|ena|enid|enya|erica|erinn|eris|erza|esme|esperanza|esther|estrella|ethel|eudora|eugenia|eulalia|eunice|eva|evalina|evangelina|evelyn|evie|fara|farah|farrah|fatima|fawn|fay|felicity|fern|fidelia|fiona|flavia|fleur|flora|florence|florrie|fran|francesca|frida|gabriela|gabriella|gail|galiana|gemma|genevieve|georgiana|geraldine|gia|gilda|gillian|ginevra|ginger|giselle|glenda|gloria|grace|gracelyn|greta|gretchen|guinevere|gwen|gwyneth|hadassah|hadley|haleigh|hana|hannah|harper|harriet|hazel|heather|hedda|heidi|helen|helene|helga|hera|hermione|hester|hilary|hilda|holland|holly|honora|hope|hulda|ida|iliana|imelda|inara|ines|ingrid|iona|irene|iris|isabeau|isadora|isla|itzel|ivanna|ivory|ivy|izabella|jacqueline|jade|jaida|jana|jane|janelle|janet|janice|janine|jasmine|jayla|jazmin|jean|jeanette|jemima|jenna|jennifer|jenny|jessa|jessamine|jesse|jessica|jewel|jillian|jocelyn|johanna|jolie|jordan|josephine|josie|joy|joyce|juanita|judith|judy|julia|juliana|julie|juliet|juniper|justine|kaida|kailani|kailey|kaira|kaitlyn|kalina|kalista|kallie|kalyani|kamila|kandace|kandice|kandra|karina|karissa|karla|kassandra|kate|katelyn|katerina|katharine|katherine|kathleen|kathryn|kathy|katie|katrina|kay|kaydence|kayla|kaylee|kayleigh|keira|kelli|kellie|kelly|kelsey|kendall|kenley|kennedy|kenzie|kerensa|kerri|kerry|kiera|kiki|kim|kimberly|kinley|kinsley|kirsten|kirstin|kit|kora|krista|kristen|kristin|kristina|kristine|kylie|kyra|lacey|lacie|laila|lana|lara|larissa|latasha|laura|laurel|lauren|laurie|lavender|lavinia|layla|lea|leah|leandra|leann|leanna|lee|leela|leena|leila|lela|lena|lenora|leona|leslie|leticia|letitia|lexi|liana|lila|liliana|lilia|lilian|lilith|lillian|lillie|lily|linda|lindsay|lindsey|lisa|lise|liv|livia|lizbeth|lizzie|lois|lola|lorraine|lottie|louisa|louise|lucia|luciana|lucie|lucienne|lucinda|lucretia|lucy|ludmila|lulu|luna|lydia|lyra|lyric|mabel|macie|maddison|madeleine|madeline|madelyn|madilyn|madison|mae|maegan|magdalena|maggie|magnolia|maia|maira|maisie|malia|malina|mallory|mandy|mara|marcella|margaret|margot|maria|mariam|marian|maribel|marie|marielle|marilyn|marisa|marisol|marissa|marjorie|markie|marla|marlee|marlene|marnie|marsha|marta|martha|mary|maryam|matilda|mattie|maud|maureen|maxine|maya|mckenna|meagan|mechelle|megan|meilani|melinda|melissa|melody|meredith|merissa|meryl|mia|michaela|micheala|michelle|mila|milana|mildred|milena|miley|millicent|millie|mimi|mindy|minerva|miranda|miriam|missy|misty|moira|molly|mona|monique|montana|morgan|muriel|mya|myah|myla|myra|nadia|nadine|nahla|nancy|naomi|natalia|natalie|natasha|naya|neva|neve|nevaeh|nevada|nichole|nicki|nicola|nicole|nika|nikita|nikki|nina|nola|noor|noelle|noemi|nola|noor|norah|nova|novalee|nyla|octavia|odessa|olivia|oliwia|olympia|oona|opal|oprah|orianna|paige|paloma|pamela|pandora|paola|paris|patience|patricia|patsy|patti|paula|paulina|pearl|peggy|penelope|penny|perla|petra|peyton|philomena|phoebe|phoenix|piper|polly|poppy|portia|precious|presley|primrose|priscilla|priya|promise|prudence|queenie|quiana|quinn|rachel|raegan|raelynn|raegan|raina|ramona|raven|rayna|rayne|reagan|rebekah|regina|reina|renee|rhea|rhonda|ria|rhiannon|rhoda|rhonda|richelle|ricki|rikki|riley|rita|river|roberta|rochelle|rocio|roma|romina|roni|ronni|rory|rosa|rosalie|rosalind|rosalyn|rosanna|rose|roselyn|rosemarie|rosemary|rowan|rowena|roxana|roxanne|ruby|rumi|rylee|sabina|sabrina|sadie|saffron|sage|saige|salma|samara|sammie|sandra|sandy|santana|sapphire|sara|sarah|sarai|sariyah|sasha|saylor|scarlett|scottie|selah|selena|selene|selina|semaj|serenity|serina|shae|shaina|shana|shania|shaniya|shannon|shari|sharlene|sharon|shauna|shawn|shawna|shay|shayla|shea|sheena|shelby|shelley|shelly|sherri|sherrie|sherry|sheryl|shirley|shreya|shyla|siena|sienna|sierra|sigrid|silvana|silvia|simone|sinead|skylar|skyler|sloane|sofia|solana|solange|sonja|sophia|sophie|soraya|sparkle|spencer|stacey|staci|stacy|star|starla|stella|stephanie|stephany|stevie|stormy|sue|summer|susan|susanna|susannah|susie|sutton|suzanna|suzanne|suzette|suzie|suzy|sydney|sylvie|sylvia|tabatha|tabitha|talia|tamara|tamera|tami|tamia|tamika|tammi|tammie|tammy|tamsin|tania|tanisha|tanya|tara|taryn|tasha|tasia|tatiana|tatum|tawny|taylor|teagan|tenley|teresa|teri|terra|terri|terry|tessa|thalia|thea|thelma|theodora|theresa|thora|tiffany|tilly|tina|tinsley|tisha|titania|toni|tonya|topaz|tori|tracey|traci|tracy|tricia|trinity|trisha|trixie|trudy|tuesday|twyla|tyler|uma|una|unique|unity|ursula|valentina|valeria|valerie|valery|vanessa|veda|vega|velvet|venus|vera|verity|veronica|vesper|vicki|vickie|vicky|victoria|vienna|vina|viola|violet|virginia|vita|viva|vivian|viviana|vivien|wanda|wendy|whitney|willow|wilma|winifred|winnie|winter|xenia|ximena|xochitl|yara|yasmin|yasmine|yolanda|ysabel|yvette|yvonne|zainab|zara|zaria|zarina|zayla|zelda|zella|zelma|zena|zenaida|zia|zina|zion|ziva|zoe|zoey|zola|zora|zoya|zula)"

	// WholeName produces a capitalized given name of either gender followed by
	// a capitalized two-part surname, e.g. "Elowen Frostwing".
	WholeName = "!<" + MaleGiven + "|" + FemaleGiven + "> !" + Prefixes + Suffixes

	// A male given name and a surname
	MaleName = "!" + MaleGiven + " !" + Prefixes + Suffixes

	// A female given name and a surname
	FemaleName = "!" + FemaleGiven + " !" + Prefixes + Suffixes
)

// Preset describes a built-in pattern.
type Preset struct {
	Name        string
	Pattern     string
	Description string
}

var presets = []Preset{
	{Name: "whole-name", Pattern: WholeName, Description: "Given name and surname"},
	{Name: "male-name", Pattern: MaleName, Description: "Male given name and surname"},
	{Name: "female-name", Pattern: FemaleName, Description: "Female given name and surname"},
	{Name: "middle-earth", Pattern: MiddleEarth, Description: "Middle Earth"},
	{Name: "japanese-constrained", Pattern: JapaneseConstrained, Description: "Japanese names, constrained"},
	{Name: "japanese-diverse", Pattern: JapaneseDiverse, Description: "Japanese names, diverse"},
	{Name: "chinese", Pattern: Chinese, Description: "Chinese names"},
	{Name: "greek", Pattern: Greek, Description: "Greek names"},
	{Name: "hawaiian-1", Pattern: Hawaiian1, Description: "Hawaiian names, first style"},
	{Name: "hawaiian-2", Pattern: Hawaiian2, Description: "Hawaiian names, second style"},
	{Name: "old-latin-place", Pattern: OldLatinPlace, Description: "Old Latin place names"},
	{Name: "dragons-pern", Pattern: DragonsPern, Description: "Dragons of Pern"},
	{Name: "dragon-riders", Pattern: DragonRiders, Description: "Dragon riders"},
	{Name: "pokemon", Pattern: Pokemon, Description: "Pokemon"},
	{Name: "fantasy-vowels-r", Pattern: FantasyVowelsR, Description: "Fantasy, vowels and R"},
	{Name: "fantasy-s-a", Pattern: FantasySA, Description: "Fantasy, S and A"},
	{Name: "fantasy-h-l", Pattern: FantasyHL, Description: "Fantasy, H and L"},
	{Name: "fantasy-n-l", Pattern: FantasyNL, Description: "Fantasy, N and L"},
	{Name: "fantasy-k-n", Pattern: FantasyKN, Description: "Fantasy, K and N"},
	{Name: "fantasy-j-g-z", Pattern: FantasyJGZ, Description: "Fantasy, J, G and Z"},
	{Name: "fantasy-k-j-y", Pattern: FantasyKJY, Description: "Fantasy, K, J and Y"},
	{Name: "fantasy-s-e", Pattern: FantasySE, Description: "Fantasy, S and E"},
	{Name: "prefixes", Pattern: Prefixes, Description: "Surname first halves"},
	{Name: "suffixes", Pattern: Suffixes, Description: "Surname second halves"},
	{Name: "male-given", Pattern: MaleGiven, Description: "Male given names"},
	{Name: "female-given", Pattern: FemaleGiven, Description: "Female given names"},
}

// Presets returns the built-in patterns in a stable order. The slice is a
// copy and may be modified by the caller.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// LookupPreset finds a built-in pattern by name.
func LookupPreset(name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
